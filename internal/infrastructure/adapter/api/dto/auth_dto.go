package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
)

// GoogleLoginRequest carries the ID token obtained by the client from Google
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse is the public profile of a user
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	UserName    string    `json:"userName"`
	Picture     string    `json:"picture,omitempty"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// NewUserResponse maps a user
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		UserName:    u.DisplayName(),
		Picture:     u.Picture,
		LastLoginAt: u.LastLoginAt,
	}
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// NewLoginResponse maps an auth result
func NewLoginResponse(res *usecase.AuthResult) LoginResponse {
	return LoginResponse{
		Token:     res.Session.Token,
		TokenType: "Bearer",
		ExpiresAt: res.Session.ExpiresAt,
		User:      NewUserResponse(res.User),
	}
}
