package dto

import (
	"time"

	"medread/internal/domain"
)

// LoginRequest is the body of POST /auth/session.
// @Description External session id issued by the OAuth broker
type LoginRequest struct {
	SessionID string `json:"session_id"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the user plus the bearer for header-based clients.
// @Description Logged-in user and session token
type LoginResponse struct {
	UserResponse
	SessionToken string `json:"session_token"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the API root.
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ReadinessResponse reports each backing dependency as up, down or disabled.
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}
