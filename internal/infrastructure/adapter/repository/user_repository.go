package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, key string) error {
	mapped := r.errorClassifier.Map(err)
	if errs.IsNotFoundError(mapped) {
		r.logger.Debug("User not found", map[string]any{
			"key":       key,
			"operation": operation,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	if err := DBFromContext(ctx, r.db).Where("id = ?", id).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return userToEntity(&userModel), nil
}

// GetByFederatedID retrieves a user by identity provider subject
func (r *UserRepository) GetByFederatedID(ctx context.Context, federatedID string) (*entity.User, error) {
	var userModel model.User
	if err := DBFromContext(ctx, r.db).Where("federated_id = ?", federatedID).Take(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by subject", err, federatedID)
	}
	return userToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := DBFromContext(ctx, r.db).Create(userToModel(user)).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Update writes profile fields and login timestamps
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := userToModel(user)
	result := DBFromContext(ctx, r.db).
		Model(userModel).
		Select("email", "user_name", "picture", "is_active", "last_login_at", "updated_at").
		Updates(userModel)

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}
	return nil
}
