package dto

import "github.com/stackscout/stackscout/internal/core/domain"

// ListRecommendationsParams defines query parameters for recommendations.
type ListRecommendationsParams struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

// RecommendationResponse pairs a job with its match score. Saved jobs never
// appear here; the engine only recommends jobs the user has not saved yet.
type RecommendationResponse struct {
	Job          JobResponse `json:"job"`
	MatchScore   float64     `json:"matchScore"`
	MatchReasons []string    `json:"matchReasons"`
}

// ToRecommendationResponse converts a domain.Recommendation.
func ToRecommendationResponse(r *domain.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Job:          ToJobResponse(&r.Job),
		MatchScore:   r.MatchScore,
		MatchReasons: r.MatchReasons,
	}
}

// ListRecommendationsResponse wraps recommendations.
type ListRecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
}
