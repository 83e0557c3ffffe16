package models

import "time"

// User mirrors the users table.
type User struct {
	UserID       string
	Username     string
	Name         string
	PasswordHash string
	AuthProvider string

	NotifyJobAlerts       bool
	NotifyRecommendations bool
	NotifySearchComplete  bool

	RefreshTokenHash       *string
	RefreshTokenExpiryTime *time.Time

	AuditFields
	DeletedAt *time.Time
}
