package security

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/security"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// payloadValidator is the part of *idtoken.Validator used here
type payloadValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// GoogleVerifier verifies Google ID tokens issued for one OAuth client
type GoogleVerifier struct {
	validator payloadValidator
	clientID  string
	logger    coreport.Logger
}

var _ security.IdentityVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a verifier that fetches Google's signing keys on demand
func NewGoogleVerifier(ctx context.Context, clientID string, logger coreport.Logger) (*GoogleVerifier, error) {
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating google token validator: %w", err)
	}
	return &GoogleVerifier{validator: validator, clientID: clientID, logger: logger}, nil
}

// Verify checks the token's signature, audience, issuer and expiry and
// requires a verified email address
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (entity.Identity, error) {
	payload, err := v.validator.Validate(ctx, token, v.clientID)
	if err != nil {
		// Validation failures are prefixed by the library; anything else is
		// a failure to reach Google for the signing keys
		if strings.HasPrefix(err.Error(), "idtoken:") {
			v.logger.Info("Rejected Google ID token", map[string]any{"error": err.Error()})
			return entity.Identity{}, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
		}
		v.logger.Error("Google ID token validation failed", map[string]any{"error": err.Error()})
		return entity.Identity{}, fmt.Errorf("%w: %s", errs.ErrIdentityProvider, err.Error())
	}

	if !googleIssuers[payload.Issuer] {
		return entity.Identity{}, fmt.Errorf("%w: unexpected issuer %q", errs.ErrInvalidToken, payload.Issuer)
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return entity.Identity{}, fmt.Errorf("%w: email is not verified", errs.ErrInvalidToken)
	}

	identity := entity.Identity{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}
	if identity.Subject == "" || identity.Email == "" {
		return entity.Identity{}, fmt.Errorf("%w: subject and email are required", errs.ErrInvalidToken)
	}
	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
