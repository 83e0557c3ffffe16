package repositories

import (
	"context"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n domain.Notification) error

	// ListNotificationsByUser returns the user's notifications newest
	// first; unreadOnly restricts to unread ones.
	ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error)

	CountUnread(ctx context.Context, userID string) (int, error)

	// MarkRead flags a single notification as read; it returns
	// apperrors.ErrNotFound when the notification does not belong to the
	// user.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkManyRead flags the given notifications as read and returns the
	// number actually updated.
	MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error)
}
