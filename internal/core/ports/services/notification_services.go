package services

import (
	"context"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// NotificationSvcFacade manages user notifications.
type NotificationSvcFacade interface {
	// Notify persists a notification for the user if their preferences
	// allow the type, and forwards it to any configured delivery channel.
	Notify(ctx context.Context, userID string, typ domain.NotificationType, title, message string) error

	ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error)
}
