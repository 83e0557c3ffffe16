package dto

import (
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly,default=false"`
	Limit      int  `form:"limit,default=20" binding:"min=1,max=100"`
	Offset     int  `form:"offset,default=0" binding:"min=0"`
}

// BatchMarkReadRequest flags several notifications as read at once.
type BatchMarkReadRequest struct {
	NotificationIDs []string `json:"notificationIDs" binding:"required,min=1"`
}

// NotificationResponse is the notification representation returned by the API.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotificationsResponse wraps the list plus the unread counter.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}
