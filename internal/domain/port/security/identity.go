package security

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
)

// IdentityVerifier checks a token issued by a federated identity provider
type IdentityVerifier interface {
	// Verify validates the token and returns the asserted identity
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired or for another audience
	// - ErrIdentityProvider: If the provider's keys cannot be fetched
	Verify(ctx context.Context, token string) (entity.Identity, error)
}

// Session is a locally issued bearer token
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Claims are the facts carried by a session token
type Claims struct {
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// TokenService issues and parses session tokens
type TokenService interface {
	// Issue creates a session token for the user
	Issue(user *entity.User) (Session, error)

	// Parse validates a session token and returns its claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired or wrongly signed
	Parse(token string) (Claims, error)
}
