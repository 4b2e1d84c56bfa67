package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/security"
)

// AuthResult is the outcome of a successful login
type AuthResult struct {
	User    *entity.User
	Session security.Session
	// Created is true when the login created the user
	Created bool
}

// AuthUseCase exchanges federated identities for local sessions
type AuthUseCase interface {
	// LoginWithGoogle verifies a Google ID token, creates or refreshes the
	// user and issues a session token
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthResult, error)

	// Authenticate resolves a session token to an existing, active user
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
