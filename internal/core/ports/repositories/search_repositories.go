package repositories

import (
	"context"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// SearchRepository records ingestion runs for analytics.
type SearchRepository interface {
	SaveSearchQuery(ctx context.Context, q domain.SearchQuery) error
	ListRecentSearches(ctx context.Context, limit int) ([]domain.SearchQuery, error)
}
