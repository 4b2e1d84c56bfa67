package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/finance-records/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-records/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-records/internal/domain/query"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keyed is implemented by models with a generated numeric primary key
type keyed interface {
	PrimaryKey() uint64
}

// GormStore implements persistence.RecordStore for one record kind
type GormStore[E entity.Record, M any] struct {
	db              *gorm.DB
	schema          *query.Schema[E]
	mapper          Mapper[E, M]
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.RecordStore[*entity.Transaction] = (*GormStore[*entity.Transaction, model.Transaction])(nil)

// NewGormStore creates a store for the kind described by schema
func NewGormStore[E entity.Record, M any](
	db *gorm.DB,
	schema *query.Schema[E],
	mapper Mapper[E, M],
	logger coreport.Logger,
) *GormStore[E, M] {
	return &GormStore[E, M]{
		db:              db,
		schema:          schema,
		mapper:          mapper,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// NewTransactionStore creates the transaction store
func NewTransactionStore(db *gorm.DB, logger coreport.Logger) persistence.RecordStore[*entity.Transaction] {
	return NewGormStore(db, entity.TransactionSchema, TransactionMapper, logger)
}

// NewAppURLStore creates the app url store
func NewAppURLStore(db *gorm.DB, logger coreport.Logger) persistence.RecordStore[*entity.AppURL] {
	return NewGormStore(db, entity.AppURLSchema, AppURLMapper, logger)
}

// NewBalanceStore creates the balance store
func NewBalanceStore(db *gorm.DB, logger coreport.Logger) persistence.RecordStore[*entity.Balance] {
	return NewGormStore(db, entity.BalanceSchema, BalanceMapper, logger)
}

// scoped starts a fresh statement on the model table, inside the context's
// transaction when there is one, with the filter applied
func (s *GormStore[E, M]) scoped(ctx context.Context, filter query.Predicate) (*gorm.DB, error) {
	db := DBFromContext(ctx, s.db).Model(new(M))
	expr, err := toExpression(filter)
	if err != nil {
		return nil, err
	}
	if expr != nil {
		db = db.Clauses(clause.Where{Exprs: []clause.Expression{expr}})
	}
	return db, nil
}

// handleDatabaseError standardizes database error handling
func (s *GormStore[E, M]) handleDatabaseError(operation string, err error) error {
	mapped := s.errorClassifier.Map(err)
	if errs.IsNotFoundError(mapped) {
		s.logger.Debug(fmt.Sprintf("%s not found when %s", s.schema.Name, operation), nil)
		return mapped
	}
	s.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"kind":  s.schema.Name,
		"error": err.Error(),
		"type":  string(s.errorClassifier.Classify(err)),
	})
	return mapped
}

// Find counts the matching rows, then loads one ordered window of them
func (s *GormStore[E, M]) Find(ctx context.Context, spec persistence.FindSpec) ([]E, int64, error) {
	countQuery, err := s.scoped(ctx, spec.Filter)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, s.handleDatabaseError("counting records", err)
	}

	items := make([]E, 0)
	if total == 0 || int64(spec.Offset) >= total {
		return items, total, nil
	}

	pageQuery, err := s.scoped(ctx, spec.Filter)
	if err != nil {
		return nil, 0, err
	}
	pageQuery = pageQuery.Order(clause.OrderByColumn{Column: column(spec.Sort.Column), Desc: spec.Sort.Descending})
	if spec.Sort.Column != s.schema.PrimaryKey {
		pageQuery = pageQuery.Order(clause.OrderByColumn{Column: column(s.schema.PrimaryKey)})
	}
	for _, rel := range spec.Preload {
		pageQuery = pageQuery.Preload(rel)
	}

	var rows []M
	if err := pageQuery.Offset(spec.Offset).Limit(spec.Limit).Find(&rows).Error; err != nil {
		return nil, 0, s.handleDatabaseError("listing records", err)
	}
	for i := range rows {
		items = append(items, s.mapper.ToEntity(&rows[i]))
	}

	s.logger.Debug("Records listed", map[string]any{
		"kind":   s.schema.Name,
		"total":  total,
		"offset": spec.Offset,
		"count":  len(items),
	})
	return items, total, nil
}

// First loads the first row matching filter
func (s *GormStore[E, M]) First(ctx context.Context, filter query.Predicate, preload ...string) (E, error) {
	var zero E
	db, err := s.scoped(ctx, filter)
	if err != nil {
		return zero, err
	}
	for _, rel := range preload {
		db = db.Preload(rel)
	}

	var row M
	if err := db.Order(clause.OrderByColumn{Column: column(s.schema.PrimaryKey)}).Take(&row).Error; err != nil {
		return zero, s.handleDatabaseError("loading record", err)
	}
	return s.mapper.ToEntity(&row), nil
}

// Exists reports whether any row matches filter
func (s *GormStore[E, M]) Exists(ctx context.Context, filter query.Predicate) (bool, error) {
	db, err := s.scoped(ctx, filter)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Limit(1).Count(&count).Error; err != nil {
		return false, s.handleDatabaseError("checking record", err)
	}
	return count > 0, nil
}

// Create inserts the record and copies the generated id back onto it
func (s *GormStore[E, M]) Create(ctx context.Context, rec E) error {
	row := s.mapper.ToModel(rec)
	if err := DBFromContext(ctx, s.db).Omit(clause.Associations).Create(row).Error; err != nil {
		return s.handleDatabaseError("creating record", err)
	}
	if k, ok := any(row).(keyed); ok {
		rec.SetRecordID(k.PrimaryKey())
	}

	s.logger.Debug("Record created", map[string]any{
		"kind": s.schema.Name,
		"id":   rec.RecordID(),
	})
	return nil
}

// Update writes the listed columns of the record's row
func (s *GormStore[E, M]) Update(ctx context.Context, rec E, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	row := s.mapper.ToModel(rec)
	result := DBFromContext(ctx, s.db).
		Model(row).
		Select(columns).
		Omit(clause.Associations).
		Updates(row)
	if result.Error != nil {
		return s.handleDatabaseError("updating record", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the rows matching filter
func (s *GormStore[E, M]) Delete(ctx context.Context, filter query.Predicate) (int64, error) {
	if filter == nil {
		return 0, fmt.Errorf("%w: refusing to delete without a filter", errs.ErrInvalidRequest)
	}
	db, err := s.scoped(ctx, filter)
	if err != nil {
		return 0, err
	}
	result := db.Delete(new(M))
	if result.Error != nil {
		return 0, s.handleDatabaseError("deleting record", result.Error)
	}
	return result.RowsAffected, nil
}
