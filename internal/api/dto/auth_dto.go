package dto

import (
	"time"

	"github.com/wexa-dev/studio-api/internal/domain"
)

// RegisterRequest payload.
type RegisterRequest struct {
	Name     string      `json:"name" validate:"required,min=2,max=120"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     domain.Role `json:"role" validate:"omitempty,oneof=admin client"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial user update.
type UpdateUserRequest struct {
	Name   *string      `json:"name" validate:"omitempty,min=2,max=120"`
	Email  *string      `json:"email" validate:"omitempty,email"`
	Role   *domain.Role `json:"role" validate:"omitempty,oneof=admin client"`
	Avatar *string      `json:"avatar" validate:"omitempty,url"`
}

// UserResponse is the public user shape.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Avatar    *string     `json:"avatar"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AuthResponse pairs an issued token with its user.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
