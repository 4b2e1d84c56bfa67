package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
)

// UserRepository defines the user operations needed by login and ownership checks
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByFederatedID retrieves a user by identity provider subject
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is linked to the subject
	// - ErrDatabaseConnection: If database connection fails
	GetByFederatedID(ctx context.Context, federatedID string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicate: If a user with the same id or subject already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update writes profile fields and login timestamps
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error
}
