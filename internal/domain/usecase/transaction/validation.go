package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
)

// requireOwner rejects calls that carry no resolved session owner
func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: no owner on request", errs.ErrUnauthenticated)
	}
	return nil
}

// ownerIsActive checks that the owner of tx exists and has not been deactivated.
// It runs inside the unit of work that writes the transaction.
func (s *Service) ownerIsActive(ctx context.Context, tx *entity.Transaction) error {
	user, err := s.users.GetByID(ctx, tx.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) || errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: %s", errs.ErrUserNotFound, tx.UserID)
		}
		return err
	}
	if !user.IsActive {
		s.logger.Warn("Rejected write for inactive user", map[string]any{
			"user_id": tx.UserID,
		})
		return errs.ErrUserInactive
	}
	return nil
}
