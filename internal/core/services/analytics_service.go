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
	"github.com/stackscout/stackscout/internal/dto"
)

// searchSampleSize is how many recorded runs feed the keyword frequency
// table; the overview itself shows fewer.
const searchSampleSize = 100

// topKeywordLimit caps the keyword frequency table in the overview.
const topKeywordLimit = 10

type analyticsService struct {
	BaseService
	jobRepo    portsrepo.JobRepository
	searchRepo portsrepo.SearchRepository
}

// NewAnalyticsService creates the analytics service facade.
func NewAnalyticsService(jobRepo portsrepo.JobRepository, searchRepo portsrepo.SearchRepository) portssvc.AnalyticsSvcFacade {
	return &analyticsService{jobRepo: jobRepo, searchRepo: searchRepo}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) GetOverview(ctx context.Context, params dto.StatsParams) (*dto.StatsResponse, error) {
	weekAgo := time.Now().AddDate(0, 0, -7)
	jobStats, err := s.jobRepo.GetJobStats(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job stats: %w", err)
	}

	searches, err := s.searchRepo.ListRecentSearches(ctx, searchSampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}

	resp := &dto.StatsResponse{
		TotalJobs:       jobStats.TotalJobs,
		ActiveJobs:      jobStats.ActiveJobs,
		JobsThisWeek:    jobStats.JobsSince,
		JobsWithSalary:  jobStats.WithSalaryData,
		JobsPerPlatform: jobStats.PerPlatform,
		TopKeywords:     topKeywords(searches, topKeywordLimit),
	}

	shown := params.RecentSearches
	if shown <= 0 || shown > len(searches) {
		shown = len(searches)
	}
	resp.RecentSearches = make([]dto.SearchSummary, 0, shown)
	for i := 0; i < shown; i++ {
		resp.RecentSearches = append(resp.RecentSearches, dto.ToSearchSummary(&searches[i]))
	}

	s.LogDebug(ctx, "Analytics overview generated",
		slog.Int("total_jobs", resp.TotalJobs),
		slog.Int("searches_sampled", len(searches)))
	return resp, nil
}

// topKeywords tallies keyword frequency across the sampled runs, most
// frequent first; ties break alphabetically so the order is stable.
func topKeywords(searches []domain.SearchQuery, limit int) []domain.KeywordCount {
	freq := make(map[string]int)
	for i := range searches {
		for _, kw := range searches[i].Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			freq[kw]++
		}
	}

	counts := make([]domain.KeywordCount, 0, len(freq))
	for kw, n := range freq {
		counts = append(counts, domain.KeywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Keyword < counts[j].Keyword
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
