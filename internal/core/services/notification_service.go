package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/notifier"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
	userRepo         portsrepo.UserRepository
	sender           notifier.Sender
}

// NewNotificationService creates the notification service facade. A nil
// sender disables external delivery.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository, userRepo portsrepo.UserRepository, sender notifier.Sender) portssvc.NotificationSvcFacade {
	if sender == nil {
		sender = notifier.NoopSender{}
	}
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		sender:           sender,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// allowsType checks the user's preferences for the notification type.
// SYSTEM notifications are always delivered.
func allowsType(prefs domain.NotificationPreferences, typ domain.NotificationType) bool {
	switch typ {
	case domain.NotificationJobAlert:
		return prefs.JobAlerts
	case domain.NotificationRecommendation:
		return prefs.Recommendations
	case domain.NotificationSearchComplete:
		return prefs.SearchComplete
	default:
		return true
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, typ domain.NotificationType, title, message string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for notification: %w", err)
	}
	if !allowsType(user.NotificationPrefs, typ) {
		s.LogDebug(ctx, "Notification suppressed by preferences",
			slog.String("user_id", userID), slog.String("type", string(typ)))
		return nil
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	// External delivery is best-effort: a channel failure never fails the
	// operation that triggered the notification.
	if err := s.sender.Send(title, message); err != nil {
		s.LogWarn(ctx, "External notification delivery failed",
			slog.String("notification_id", notification.NotificationID),
			slog.String("error", err.Error()))
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	updated, err := s.notificationRepo.MarkManyRead(ctx, userID, notificationIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}
