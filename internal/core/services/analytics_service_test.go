package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/core/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	jobRepo    *MockJobRepository
	searchRepo *MockSearchRepository
	service    portssvc.AnalyticsSvcFacade
	ctx        context.Context
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.searchRepo = new(MockSearchRepository)
	s.service = services.NewAnalyticsService(s.jobRepo, s.searchRepo)
	s.ctx = context.Background()
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) TestGetOverview_AggregatesJobAndSearchStats() {
	s.jobRepo.On("GetJobStats", s.ctx, mock.AnythingOfType("time.Time")).Return(&domain.JobStats{
		TotalJobs:      120,
		ActiveJobs:     90,
		JobsSince:      15,
		WithSalaryData: 40,
		PerPlatform: []domain.PlatformJobCount{
			{Platform: "remoteok", Count: 80},
			{Platform: "weworkremotely", Count: 40},
		},
	}, nil)

	now := time.Now()
	searches := []domain.SearchQuery{
		{SearchID: "s1", Keywords: []string{"golang", "remote"}, Platform: "remoteok", ResultCount: 30, CreatedAt: now},
		{SearchID: "s2", Keywords: []string{"Golang"}, Platform: "weworkremotely", ResultCount: 10, CreatedAt: now.Add(-time.Hour)},
		{SearchID: "s3", Keywords: []string{"python"}, Platform: "remoteok", ResultCount: 5, CreatedAt: now.Add(-2 * time.Hour)},
	}
	s.searchRepo.On("ListRecentSearches", s.ctx, 100).Return(searches, nil)

	overview, err := s.service.GetOverview(s.ctx, dto.StatsParams{RecentSearches: 2})

	s.Require().NoError(err)
	s.Equal(120, overview.TotalJobs)
	s.Equal(90, overview.ActiveJobs)
	s.Equal(15, overview.JobsThisWeek)
	s.Equal(40, overview.JobsWithSalary)
	s.Len(overview.JobsPerPlatform, 2)

	s.Require().NotEmpty(overview.TopKeywords)
	s.Equal("golang", overview.TopKeywords[0].Keyword, "keyword counting is case-insensitive")
	s.Equal(2, overview.TopKeywords[0].Count)

	s.Len(overview.RecentSearches, 2, "display is capped even though more runs feed the keyword table")
	s.Equal("remoteok", overview.RecentSearches[0].Platform)
	s.Equal([]string{"golang", "remote"}, overview.RecentSearches[0].Keywords)
}

func (s *AnalyticsServiceTestSuite) TestGetOverview_JobStatsFailurePropagates() {
	s.jobRepo.On("GetJobStats", s.ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection reset"))

	_, err := s.service.GetOverview(s.ctx, dto.StatsParams{RecentSearches: 10})

	s.Require().Error(err)
	s.searchRepo.AssertNotCalled(s.T(), "ListRecentSearches", mock.Anything, mock.Anything)
}
