package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackscout/stackscout/internal/apperrors"
	"github.com/stackscout/stackscout/internal/core/domain"
	portsrepo "github.com/stackscout/stackscout/internal/core/ports/repositories"
	"github.com/stackscout/stackscout/internal/models"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepository
var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           domain.NotificationType(m.Type),
		Title:          m.Title,
		Message:        m.Message,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, type, title, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		n.NotificationID, n.UserID, string(n.Type), n.Title, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = false OR is_read = false)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.UserID, &m.Type, &m.Title, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE notification_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkManyRead(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE user_id = $1 AND notification_id = ANY($2) AND is_read = false;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, notificationIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read for user %s: %w", userID, err)
	}
	return int(tag.RowsAffected()), nil
}
