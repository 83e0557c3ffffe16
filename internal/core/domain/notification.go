package domain

import "time"

// NotificationType classifies a notification for preference filtering.
type NotificationType string

const (
	NotificationJobAlert       NotificationType = "JOB_ALERT"
	NotificationRecommendation NotificationType = "RECOMMENDATION"
	NotificationSearchComplete NotificationType = "SEARCH_COMPLETE"
	NotificationSystem         NotificationType = "SYSTEM"
)

// Notification is a user-facing message persisted for later delivery/display.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
