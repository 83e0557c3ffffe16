package dto

import (
	"time"

	"github.com/stackscout/stackscout/internal/core/domain"
)

// CreateUserRequest defines the data required to register a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=200"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UpdateNotificationPrefsRequest replaces the user's notification preferences.
type UpdateNotificationPrefsRequest struct {
	JobAlerts       bool `json:"jobAlerts"`
	Recommendations bool `json:"recommendations"`
	SearchComplete  bool `json:"searchComplete"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UserResponse is the user representation returned by the API.
type UserResponse struct {
	UserID            string                         `json:"userID"`
	Username          string                         `json:"username"`
	Name              string                         `json:"name"`
	AuthProvider      string                         `json:"authProvider"`
	NotificationPrefs domain.NotificationPreferences `json:"notificationPrefs"`
	CreatedAt         time.Time                      `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		Username:          u.Username,
		Name:              u.Name,
		AuthProvider:      string(u.AuthProvider),
		NotificationPrefs: u.NotificationPrefs,
		CreatedAt:         u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
