package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// optionalTextColumns lists the nullable text columns per table. Since 1.1.0
// an absent value is stored as NULL, never as an empty string.
var optionalTextColumns = map[string][]string{
	"transactions": {"currency", "project", "category", "name", "store", "note", "tags", "date", "time", "fee_name", "bonus_name"},
	"balances":     {"date", "time", "note"},
	"users":        {"picture"},
}

// NormalizeOptionalText rewrites empty optional text to NULL so that search
// and NotNull filters treat both the same way
type NormalizeOptionalText struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeOptionalText creates a new migration instance
func NewNormalizeOptionalText(db *gorm.DB, logger coreport.Logger) *NormalizeOptionalText {
	return &NormalizeOptionalText{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration in one transaction
func (m *NormalizeOptionalText) Run(ctx context.Context) error {
	m.logger.Info("Normalizing empty optional text to NULL", nil)

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for table, columns := range optionalTextColumns {
			for _, column := range columns {
				// Columns added after 1.0.0 cannot hold legacy values
				if !tx.Migrator().HasColumn(table, column) {
					continue
				}
				result := tx.Table(table).
					Where(clause.Eq{Column: clause.Column{Name: column}, Value: ""}).
					Update(column, gorm.Expr("NULL"))
				if result.Error != nil {
					m.logger.Error("Failed to normalize column", map[string]any{
						"table":  table,
						"column": column,
						"error":  result.Error.Error(),
					})
					return result.Error
				}
				if result.RowsAffected > 0 {
					m.logger.Info("Normalized column", map[string]any{
						"table":  table,
						"column": column,
						"rows":   result.RowsAffected,
					})
				}
			}
		}
		return nil
	})
}
