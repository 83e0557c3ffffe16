package services

import (
	"context"

	"github.com/stackscout/stackscout/internal/dto"
)

// AnalyticsSvcFacade aggregates job and search statistics for reporting.
type AnalyticsSvcFacade interface {
	// GetOverview returns overall job counts, per-platform breakdowns,
	// and search-pattern analytics over recent ingestion runs.
	GetOverview(ctx context.Context, params dto.StatsParams) (*dto.StatsResponse, error)
}
