// Package auth handles registration, login, token issuance and verification,
// and the JWT middleware that guards authenticated routes.
package auth

import "github.com/user/newswire-go/models"

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Reader"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=4" example:"strongpassword123"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"strongpassword123"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserResponse wraps a single user, as returned by /auth/me.
type UserResponse struct {
	User *models.User `json:"user"`
}
