package domain

// Recommendation pairs a job with its computed match score for a user.
type Recommendation struct {
	Job          Job      `json:"job"`
	MatchScore   float64  `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}

// RecommendationConfig tunes the weighted scoring of the recommendation engine.
type RecommendationConfig struct {
	SkillWeight      float64
	LocationWeight   float64
	SalaryWeight     float64
	CompanyWeight    float64
	ExperienceWeight float64
	MinMatchScore    float64
	MaxCandidates    int
	RecentWindowDays int
}

// DefaultRecommendationConfig mirrors the product's default scoring weights.
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		SkillWeight:      0.4,
		LocationWeight:   0.2,
		SalaryWeight:     0.15,
		CompanyWeight:    0.15,
		ExperienceWeight: 0.1,
		MinMatchScore:    0.3,
		MaxCandidates:    100,
		RecentWindowDays: 30,
	}
}
