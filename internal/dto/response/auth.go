package response

import (
	"time"

	"ticket-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expires_at"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:     user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
