package models

import "time"

// Notification mirrors the notifications table.
type Notification struct {
	NotificationID string
	UserID         string
	Type           string
	Title          string
	Message        string
	IsRead         bool
	CreatedAt      time.Time
}
