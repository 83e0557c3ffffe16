package services

import (
	"context"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and opaque refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its
	// expiry time. The caller persists its hash via the user service.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token
	// against the stored hash and returns the owning user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade implements the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the Google consent page URL for the given state.
	AuthCodeURL(state string) string

	// ExchangeAndAuthenticate exchanges the authorization code, validates
	// the ID token, and resolves (or creates) the matching user.
	ExchangeAndAuthenticate(ctx context.Context, code string) (*domain.User, error)
}
