package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// NotificationPreferences controls which notification types a user receives.
type NotificationPreferences struct {
	JobAlerts       bool `json:"jobAlerts"`
	Recommendations bool `json:"recommendations"`
	SearchComplete  bool `json:"searchComplete"`
}

// User represents an application user.
type User struct {
	UserID       string       `json:"userID"`
	Username     string       `json:"username"` // Unique login name (email for OAuth users)
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"` // Empty for OAuth-only accounts
	AuthProvider AuthProvider `json:"authProvider"`

	NotificationPrefs NotificationPreferences `json:"notificationPrefs"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
