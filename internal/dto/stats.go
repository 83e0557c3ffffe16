package dto

import (
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// StatsParams defines query parameters for the analytics overview.
type StatsParams struct {
	RecentSearches int `form:"recentSearches,default=10" binding:"min=1,max=50"`
}

// SearchSummary is one recorded ingestion run shown in the overview.
type SearchSummary struct {
	Keywords    []string  `json:"keywords"`
	Platform    string    `json:"platform"`
	ResultCount int       `json:"resultCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatsResponse is the analytics overview: overall job counts, per-platform
// breakdown, and search-pattern analytics derived from recorded runs.
type StatsResponse struct {
	TotalJobs       int                       `json:"totalJobs"`
	ActiveJobs      int                       `json:"activeJobs"`
	JobsThisWeek    int                       `json:"jobsThisWeek"`
	JobsWithSalary  int                       `json:"jobsWithSalary"`
	JobsPerPlatform []domain.PlatformJobCount `json:"jobsPerPlatform"`
	TopKeywords     []domain.KeywordCount     `json:"topKeywords"`
	RecentSearches  []SearchSummary           `json:"recentSearches"`
}

// ToSearchSummary converts a domain.SearchQuery.
func ToSearchSummary(q *domain.SearchQuery) SearchSummary {
	return SearchSummary{
		Keywords:    q.Keywords,
		Platform:    q.Platform,
		ResultCount: q.ResultCount,
		CreatedAt:   q.CreatedAt,
	}
}
