package database

import (
	"context"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// UnitOfWork runs each logical operation in one database transaction
// carried by the context
type UnitOfWork struct {
	db         *gorm.DB
	logger     coreport.Logger
	retry      RetryConfig
	classifier *repository.ErrorClassifier
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, retry RetryConfig) *UnitOfWork {
	return &UnitOfWork{
		db:         db,
		logger:     logger,
		retry:      retry,
		classifier: repository.NewErrorClassifier(),
	}
}

// Do runs fn inside a transaction. A call made while a transaction is
// already in the context joins it. The outermost call commits, rolls back
// on error or panic, and reruns fn when the failure was a lock conflict or
// a dropped connection.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := repository.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(repository.WithTx(ctx, tx))
		})
	}, u.classifier, u.logger)
}
