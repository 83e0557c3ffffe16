package repositories

import (
	"context"
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes the user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error

	// UpdateRefreshTokenHash stores the hash and expiry of the user's
	// current refresh token; ClearRefreshTokenHash revokes it.
	UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime time.Time) error
	ClearRefreshTokenHash(ctx context.Context, userID string) error

	UpdateNotificationPrefs(ctx context.Context, userID string, prefs domain.NotificationPreferences) error
}
