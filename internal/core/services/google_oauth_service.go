package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stackscout/stackscout/internal/core/domain"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements the Google sign-in flow against the
// authorization-code grant with ID token validation.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
	userService  portssvc.UserSvcFacade
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		userService: userService,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) ExchangeAndAuthenticate(ctx context.Context, code string) (*domain.User, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response did not include an id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google ID token did not include an email claim")
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	user, err := s.userService.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve google user: %w", err)
	}

	s.LogInfo(ctx, "Google login completed", slog.String("user_id", user.UserID))
	return user, nil
}
