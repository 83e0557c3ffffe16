package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/recommend"
)

type recommendationService struct {
	BaseService
	jobRepo  portsrepo.JobRepository
	userRepo portsrepo.UserRepository
	config   domain.RecommendationConfig
}

// NewRecommendationService creates the recommendation service facade with
// the default scoring configuration.
func NewRecommendationService(jobRepo portsrepo.JobRepository, userRepo portsrepo.UserRepository) portssvc.RecommendationSvcFacade {
	return &recommendationService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		config:   domain.DefaultRecommendationConfig(),
	}
}

var _ portssvc.RecommendationSvcFacade = (*recommendationService)(nil)

// userProfile aggregates the signals extracted from a user's saved jobs.
type userProfile struct {
	text       string
	skills     map[string]bool
	locations  []string
	companies  map[string]bool
	salaryMid  int64
	seniority  string
	savedIDs   map[string]bool
	savedCount int
}

func (s *recommendationService) GenerateRecommendations(ctx context.Context, userID string, limit int) ([]domain.Recommendation, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load user for recommendations: %w", err)
	}

	profile, err := s.buildProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	// No saved jobs means no signal to score against.
	if profile.savedCount == 0 {
		return []domain.Recommendation{}, nil
	}

	since := time.Now().AddDate(0, 0, -s.config.RecentWindowDays)
	candidates, err := s.jobRepo.ListRecentJobs(ctx, since, s.config.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate jobs: %w", err)
	}

	vectorizer := recommend.NewVectorizer()

	var recommendations []domain.Recommendation
	for i := range candidates {
		job := candidates[i]
		if profile.savedIDs[job.JobID] {
			continue
		}

		score, reasons := s.scoreJob(vectorizer, profile, job)
		if score < s.config.MinMatchScore {
			continue
		}
		recommendations = append(recommendations, domain.Recommendation{
			Job:          job,
			MatchScore:   score,
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	s.LogDebug(ctx, "Recommendations generated",
		slog.String("user_id", userID),
		slog.Int("count", len(recommendations)))
	return recommendations, nil
}

func (s *recommendationService) buildProfile(ctx context.Context, userID string) (*userProfile, error) {
	savedIDs, err := s.jobRepo.FindSavedJobIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved jobs: %w", err)
	}

	profile := &userProfile{
		skills:    make(map[string]bool),
		companies: make(map[string]bool),
		savedIDs:  savedIDs,
	}

	var textParts []string
	var salaryMids []int64
	for jobID := range savedIDs {
		job, err := s.jobRepo.FindJobByID(ctx, jobID)
		if err != nil {
			// A saved job may have been purged; skip it rather than
			// failing the whole run.
			continue
		}
		profile.savedCount++

		textParts = append(textParts, job.Role, job.Description, strings.Join(job.TechStack, " "))
		for _, skill := range job.TechStack {
			profile.skills[strings.ToLower(skill)] = true
		}
		for _, skill := range recommend.ExtractSkills(job.Role + " " + job.Description) {
			profile.skills[skill] = true
		}
		if job.Location != "" {
			profile.locations = append(profile.locations, strings.ToLower(job.Location))
		}
		if job.Company != "" {
			profile.companies[strings.ToLower(job.Company)] = true
		}
		if mid, ok := salaryMidpoint(*job); ok {
			salaryMids = append(salaryMids, mid)
		}
		if sen := seniorityOf(job.Role); sen != "" && profile.seniority == "" {
			profile.seniority = sen
		}
	}
	profile.text = strings.Join(textParts, " ")
	if len(salaryMids) > 0 {
		var sum int64
		for _, m := range salaryMids {
			sum += m
		}
		profile.salaryMid = sum / int64(len(salaryMids))
	}
	return profile, nil
}

func (s *recommendationService) scoreJob(vectorizer *recommend.Vectorizer, profile *userProfile, job domain.Job) (float64, []string) {
	jobText := job.Role + " " + job.Description + " " + strings.Join(job.TechStack, " ")

	skillScore := vectorizer.Similarity(profile.text, jobText)
	locationScore := locationMatch(profile.locations, job.Location)
	salaryScore := salaryMatch(profile.salaryMid, job)
	companyScore := 0.5
	if profile.companies[strings.ToLower(job.Company)] {
		companyScore = 1.0
	}
	experienceScore := experienceMatch(profile.seniority, job.Role)

	total := s.config.SkillWeight*skillScore +
		s.config.LocationWeight*locationScore +
		s.config.SalaryWeight*salaryScore +
		s.config.CompanyWeight*companyScore +
		s.config.ExperienceWeight*experienceScore

	return total, matchReasons(total, profile, job)
}

// matchReasons produces the human-readable explanation shown alongside a
// recommendation, led by an overall quality band.
func matchReasons(score float64, profile *userProfile, job domain.Job) []string {
	var reasons []string
	switch {
	case score >= 0.8:
		reasons = append(reasons, "Excellent match for your profile")
	case score >= 0.6:
		reasons = append(reasons, "Strong match for your profile")
	case score >= 0.4:
		reasons = append(reasons, "Good match for your profile")
	default:
		reasons = append(reasons, "Possible match for your profile")
	}

	var matched []string
	for _, skill := range job.TechStack {
		if profile.skills[strings.ToLower(skill)] {
			matched = append(matched, strings.ToLower(skill))
		}
	}
	if len(matched) > 0 {
		if len(matched) > 3 {
			matched = matched[:3]
		}
		reasons = append(reasons, "Matches your skills: "+strings.Join(matched, ", "))
	}
	if locationMatch(profile.locations, job.Location) >= 0.8 {
		reasons = append(reasons, "Located in "+job.Location)
	}
	if profile.companies[strings.ToLower(job.Company)] {
		reasons = append(reasons, "You saved jobs at "+job.Company+" before")
	}
	return reasons
}

func salaryMidpoint(job domain.Job) (int64, bool) {
	min, max := job.Salary.Min, job.Salary.Max
	switch {
	case min != nil && max != nil:
		return (*min + *max) / 2, true
	case min != nil:
		return *min, true
	case max != nil:
		return *max, true
	default:
		return 0, false
	}
}

// salaryMatch compares the job's normalized midpoint to the user's average
// expectation; either side missing scores neutral.
func salaryMatch(expected int64, job domain.Job) float64 {
	mid, ok := salaryMidpoint(job)
	if !ok || expected <= 0 {
		return 0.5
	}
	if mid >= expected {
		return 1.0
	}
	return float64(mid) / float64(expected)
}

// locationMatch scores 1.0 for a location the user saved jobs in, 0.8 for
// remote roles, 0.5 with no location history, and 0.2 otherwise. A posting
// without a location carries no signal and scores neutral; it must not fall
// into the substring loop, where the empty string matches everything.
func locationMatch(preferred []string, location string) float64 {
	loc := strings.ToLower(strings.TrimSpace(location))
	if len(preferred) == 0 || loc == "" {
		return 0.5
	}
	for _, p := range preferred {
		if strings.Contains(loc, p) || strings.Contains(p, loc) {
			return 1.0
		}
	}
	if strings.Contains(loc, "remote") || strings.Contains(loc, "anywhere") || strings.Contains(loc, "worldwide") {
		return 0.8
	}
	return 0.2
}

func seniorityOf(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "principal") || strings.Contains(r, "staff"):
		return "staff"
	case strings.Contains(r, "senior") || strings.Contains(r, "lead"):
		return "senior"
	case strings.Contains(r, "junior") || strings.Contains(r, "entry") || strings.Contains(r, "intern"):
		return "junior"
	default:
		return ""
	}
}

// experienceMatch scores seniority alignment between the user's saved roles
// and the candidate role; unknown on either side is neutral.
func experienceMatch(preferred, role string) float64 {
	if preferred == "" {
		return 0.5
	}
	sen := seniorityOf(role)
	if sen == "" {
		return 0.5
	}
	if sen == preferred {
		return 1.0
	}
	return 0.2
}
