package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	"github.com/stackscout/stackscout/internal/models"
)

type PgxSearchRepository struct {
	BaseRepository
}

func newPgxSearchRepository(pool *pgxpool.Pool) portsrepo.SearchRepository {
	return &PgxSearchRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxSearchRepository implements portsrepo.SearchRepository
var _ portsrepo.SearchRepository = (*PgxSearchRepository)(nil)

func (r *PgxSearchRepository) SaveSearchQuery(ctx context.Context, q domain.SearchQuery) error {
	query := `
		INSERT INTO search_queries (search_id, keywords, platform, result_count, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, q.SearchID, q.Keywords, q.Platform, q.ResultCount, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save search query: %w", err)
	}
	return nil
}

func (r *PgxSearchRepository) ListRecentSearches(ctx context.Context, limit int) ([]domain.SearchQuery, error) {
	query := `
		SELECT search_id, keywords, platform, result_count, created_at
		FROM search_queries
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.SearchQuery
	for rows.Next() {
		var m models.SearchQuery
		if err := rows.Scan(&m.SearchID, &m.Keywords, &m.Platform, &m.ResultCount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search query row: %w", err)
		}
		searches = append(searches, domain.SearchQuery(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search query rows: %w", err)
	}
	return searches, nil
}
