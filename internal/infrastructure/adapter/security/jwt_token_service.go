package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/security"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength is the shortest HMAC secret accepted for HS256
const minSecretLength = 32

// sessionClaims is the JWT payload of a session token. The subject is the user id.
type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and verifies HS256 session tokens
type JWTTokenService struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ security.TokenService = (*JWTTokenService)(nil)

// NewJWTTokenService creates a token service. The secret must be at least 32 bytes.
func NewJWTTokenService(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTTokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &JWTTokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a session token for the user
func (s *JWTTokenService) Issue(user *entity.User) (security.Session, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := &sessionClaims{
		Email: user.Email,
		Name:  user.DisplayName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return security.Session{}, fmt.Errorf("%w: signing session token: %s", errs.ErrInternalServer, err.Error())
	}
	return security.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Parse verifies the signature, issuer and lifetime of a session token
func (s *JWTTokenService) Parse(token string) (security.Claims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return security.Claims{}, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
	}
	if !parsed.Valid || claims.Subject == "" {
		return security.Claims{}, fmt.Errorf("%w: missing subject", errs.ErrInvalidToken)
	}

	return security.Claims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
