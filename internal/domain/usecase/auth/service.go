package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/security"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
)

// Service implements usecase.AuthUseCase
type Service struct {
	verifier     security.IdentityVerifier
	tokens       security.TokenService
	users        persistence.UserRepository
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AuthUseCase = (*Service)(nil)

// NewAuthUseCase creates the auth service
func NewAuthUseCase(
	verifier security.IdentityVerifier,
	tokens security.TokenService,
	users persistence.UserRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		verifier:     verifier,
		tokens:       tokens,
		users:        users,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// LoginWithGoogle verifies the ID token, then creates the user on first
// login or refreshes the profile on later ones, and issues a session.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.AuthResult, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: id token is required", errs.ErrInvalidToken)
	}

	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.logger.Warn("Identity token rejected", map[string]any{"error": err.Error()})
		return nil, err
	}

	var (
		user    *entity.User
		created bool
	)
	err = s.uow.Do(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByFederatedID(ctx, identity.Subject)
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			user, err = entity.NewUser(identity, s.timeProvider)
			if err != nil {
				return err
			}
			created = true
			return s.users.Create(ctx, user)
		case err != nil:
			return err
		case !existing.IsActive:
			return errs.ErrUserInactive
		default:
			existing.RecordLogin(identity, s.timeProvider)
			user = existing
			return s.users.Update(ctx, user)
		}
	})
	if err != nil {
		s.logger.Error("Login failed", map[string]any{
			"subject": identity.Subject,
			"error":   err.Error(),
		})
		return nil, err
	}

	session, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"created": created,
	})
	return &usecase.AuthResult{User: user, Session: session, Created: created}, nil
}

// Authenticate resolves a session token to an existing, active user
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrUnauthenticated
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: session user no longer exists", errs.ErrInvalidToken)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.ErrUserInactive
	}
	return user, nil
}
