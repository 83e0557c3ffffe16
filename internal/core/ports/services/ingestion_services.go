package services

import (
	"context"

	"github.com/stackscout/stackscout/internal/dto"
)

// IngestionSvcFacade runs the scrape-normalize-store pipeline.
type IngestionSvcFacade interface {
	// RunIngestion fetches postings from all configured sources, stores
	// them, and returns per-source counts.
	RunIngestion(ctx context.Context, keywords []string) (*dto.IngestionSummary, error)
}
