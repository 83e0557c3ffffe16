package services

import (
	"context"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// RecommendationSvcFacade scores recent jobs against a user's profile.
type RecommendationSvcFacade interface {
	// GenerateRecommendations returns up to limit recommendations sorted
	// by match score descending.
	GenerateRecommendations(ctx context.Context, userID string, limit int) ([]domain.Recommendation, error)
}
