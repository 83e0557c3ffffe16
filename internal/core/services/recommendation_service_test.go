package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/salary"
	"github.com/stackscout/stackscout/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecommendationServiceTestSuite struct {
	suite.Suite
	jobRepo  *MockJobRepository
	userRepo *MockUserRepository
	service  portssvc.RecommendationSvcFacade
	ctx      context.Context
}

func (s *RecommendationServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.userRepo = new(MockUserRepository)
	s.service = services.NewRecommendationService(s.jobRepo, s.userRepo)
	s.ctx = context.Background()
}

func TestRecommendationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}

func int64Ptr(v int64) *int64 { return &v }

func (s *RecommendationServiceTestSuite) savedGoJob() *domain.Job {
	return &domain.Job{
		JobID:       "saved-1",
		Company:     "Acme",
		Role:        "Senior Go Engineer",
		Description: "Build and operate Go microservices with PostgreSQL on Kubernetes",
		TechStack:   []string{"golang", "postgresql", "docker"},
		Location:    "Remote",
		Salary:      salary.Range{Min: int64Ptr(100000), Max: int64Ptr(140000), Currency: salary.USD},
	}
}

func (s *RecommendationServiceTestSuite) TestGenerateRecommendations_RanksSimilarJobs() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	s.jobRepo.On("FindSavedJobIDs", s.ctx, "u1").Return(map[string]bool{"saved-1": true}, nil)
	s.jobRepo.On("FindJobByID", s.ctx, "saved-1").Return(s.savedGoJob(), nil)

	similar := domain.Job{
		JobID:       "similar",
		Company:     "Globex",
		Role:        "Senior Go Developer",
		Description: "Go microservices, PostgreSQL and Kubernetes experience required",
		TechStack:   []string{"golang", "kubernetes"},
		Location:    "Remote",
		Salary:      salary.Range{Min: int64Ptr(130000), Max: int64Ptr(150000), Currency: salary.USD},
	}
	unrelated := domain.Job{
		JobID:       "unrelated",
		Company:     "Initech",
		Role:        "Marketing Manager",
		Description: "Own brand campaigns and agency relationships",
		Location:    "Paris, France",
	}
	candidates := []domain.Job{*s.savedGoJob(), similar, unrelated}
	s.jobRepo.On("ListRecentJobs", s.ctx, mock.AnythingOfType("time.Time"), 100).Return(candidates, nil)

	recs, err := s.service.GenerateRecommendations(s.ctx, "u1", 10)

	s.Require().NoError(err)
	s.Require().Len(recs, 1, "the saved job is excluded and the unrelated one scores below threshold")
	s.Equal("similar", recs[0].Job.JobID)
	s.GreaterOrEqual(recs[0].MatchScore, 0.3)
	s.NotEmpty(recs[0].MatchReasons)
	hasSkillReason := false
	for _, reason := range recs[0].MatchReasons {
		if strings.HasPrefix(reason, "Matches your skills:") {
			hasSkillReason = true
		}
	}
	s.True(hasSkillReason, "expected a skill-overlap reason, got %v", recs[0].MatchReasons)
}

func (s *RecommendationServiceTestSuite) TestGenerateRecommendations_EmptyLocationScoresNeutral() {
	saved := s.savedGoJob()
	saved.Location = "Berlin, Germany"
	s.userRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	s.jobRepo.On("FindSavedJobIDs", s.ctx, "u1").Return(map[string]bool{"saved-1": true}, nil)
	s.jobRepo.On("FindJobByID", s.ctx, "saved-1").Return(saved, nil)

	inBerlin := *saved
	inBerlin.JobID = "in-berlin"
	inBerlin.Location = "Berlin, Germany"
	noLocation := *saved
	noLocation.JobID = "no-location"
	noLocation.Location = ""
	s.jobRepo.On("ListRecentJobs", s.ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]domain.Job{inBerlin, noLocation}, nil)

	recs, err := s.service.GenerateRecommendations(s.ctx, "u1", 10)

	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Equal("in-berlin", recs[0].Job.JobID, "a real location match must outrank a missing location")
	s.Greater(recs[0].MatchScore, recs[1].MatchScore)
	for _, reason := range recs[1].MatchReasons {
		s.False(strings.HasPrefix(reason, "Located in"),
			"a posting without a location must not claim a location match, got %v", recs[1].MatchReasons)
	}
}

func (s *RecommendationServiceTestSuite) TestGenerateRecommendations_NoSavedJobsYieldsNothing() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	s.jobRepo.On("FindSavedJobIDs", s.ctx, "u1").Return(map[string]bool{}, nil)

	recs, err := s.service.GenerateRecommendations(s.ctx, "u1", 10)

	s.Require().NoError(err)
	s.Empty(recs)
	s.jobRepo.AssertNotCalled(s.T(), "ListRecentJobs", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecommendationServiceTestSuite) TestGenerateRecommendations_UnknownUser() {
	s.userRepo.On("FindUserByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GenerateRecommendations(s.ctx, "ghost", 10)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RecommendationServiceTestSuite) TestGenerateRecommendations_LimitApplied() {
	s.userRepo.On("FindUserByID", s.ctx, "u1").Return(&domain.User{UserID: "u1"}, nil)
	s.jobRepo.On("FindSavedJobIDs", s.ctx, "u1").Return(map[string]bool{"saved-1": true}, nil)
	s.jobRepo.On("FindJobByID", s.ctx, "saved-1").Return(s.savedGoJob(), nil)

	var candidates []domain.Job
	for _, id := range []string{"c1", "c2", "c3"} {
		candidates = append(candidates, domain.Job{
			JobID:       id,
			Company:     "Acme",
			Role:        "Senior Go Engineer",
			Description: "Build and operate Go microservices with PostgreSQL on Kubernetes",
			TechStack:   []string{"golang", "postgresql"},
			Location:    "Remote",
			Salary:      salary.Range{Min: int64Ptr(120000), Max: int64Ptr(150000), Currency: salary.USD},
			PostedDate:  time.Now(),
		})
	}
	s.jobRepo.On("ListRecentJobs", s.ctx, mock.AnythingOfType("time.Time"), 100).Return(candidates, nil)

	recs, err := s.service.GenerateRecommendations(s.ctx, "u1", 2)

	s.Require().NoError(err)
	s.Len(recs, 2)
}
