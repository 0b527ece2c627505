package dto

import (
	"time"

	"subcommerce/internal/application/user/usecases"
	"subcommerce/internal/domain/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Role:        string(u.Role()),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
	}
}

func ToAuthResponse(r *usecases.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:        ToUserResponse(r.User),
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		ExpiresIn:   r.ExpiresIn,
	}
}
