package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/google/uuid"
)

// Identity is the profile asserted by a federated identity provider
type Identity struct {
	Subject string // Provider-unique user id
	Email   string
	Name    string
	Picture string
}

// User is an account created on first federated login
type User struct {
	ID          string // Random UUID, used as the owner key of transactions
	FederatedID string // Identity provider subject
	Email       string
	UserName    string
	Picture     string
	IsActive    bool
	CreatedAt   time.Time
	LastLoginAt time.Time
	UpdatedAt   *time.Time
}

// NewUser creates an active user from a verified identity
func NewUser(identity Identity, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(identity.Subject) == "" {
		return nil, errs.NewValidationError("subject", "is required")
	}
	if strings.TrimSpace(identity.Email) == "" {
		return nil, errs.NewValidationError("email", "is required")
	}

	now := timeProvider.Now()
	user := &User{
		ID:          uuid.NewString(),
		FederatedID: identity.Subject,
		Email:       identity.Email,
		UserName:    identity.Email,
		IsActive:    true,
		CreatedAt:   now,
		LastLoginAt: now,
	}
	user.applyProfile(identity)
	return user, nil
}

// RecordLogin refreshes profile fields from the identity and stamps the login
func (u *User) RecordLogin(identity Identity, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.applyProfile(identity)
	u.LastLoginAt = now
	u.UpdatedAt = stamp(now)
}

// DisplayName returns the best available name for the user
func (u *User) DisplayName() string {
	if u.UserName != "" {
		return u.UserName
	}
	return u.Email
}

func (u *User) applyProfile(identity Identity) {
	if identity.Email != "" {
		u.Email = identity.Email
	}
	if identity.Name != "" {
		u.UserName = identity.Name
	}
	if identity.Picture != "" {
		u.Picture = identity.Picture
	}
}
