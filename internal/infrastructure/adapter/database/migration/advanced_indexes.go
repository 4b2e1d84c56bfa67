package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings.
// On other dialects every method is a no-op.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates partial and BRIN indexes used by list queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if !m.isPostgres() {
		m.logger.Debug("Skipping advanced indexes for dialect", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// Owner-scoped listing only ever reads active rows
			name: "idx_transactions_active_owner",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_active_owner
				ON transactions (user_id, id) WHERE is_active`,
		},
		{
			name: "idx_balances_active_created",
			sql: `CREATE INDEX IF NOT EXISTS idx_balances_active_created
				ON balances (created_at DESC) WHERE is_active`,
		},
		{
			name: "idx_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies table settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Patches rewrite rows in place, leave room on each page
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
