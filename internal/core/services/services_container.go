package services

import (
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/notifier"
	"github.com/stackscout/stackscout/internal/platform/config"
	"github.com/stackscout/stackscout/internal/scraper"
)

// NewServiceContainer wires every service over the repository provider and
// returns the container handlers consume.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	sender notifier.Sender,
	sources []scraper.Source,
) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	tokenService := NewTokenService(cfg, userService)
	googleOAuthService := NewGoogleOAuthService(cfg, userService)
	jobService := NewJobService(repos.JobRepo)
	notificationService := NewNotificationService(repos.NotificationRepo, repos.UserRepo, sender)
	recommendationService := NewRecommendationService(repos.JobRepo, repos.UserRepo)
	ingestionService := NewIngestionService(sources, jobService, repos.SearchRepo, userService, notificationService)
	analyticsService := NewAnalyticsService(repos.JobRepo, repos.SearchRepo)

	return &portssvc.ServiceContainer{
		User:           userService,
		Token:          tokenService,
		GoogleOAuth:    googleOAuthService,
		Job:            jobService,
		Notification:   notificationService,
		Recommendation: recommendationService,
		Ingestion:      ingestionService,
		Analytics:      analyticsService,
	}
}
