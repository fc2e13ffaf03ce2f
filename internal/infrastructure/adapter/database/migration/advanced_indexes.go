package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
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

type indexDefinition struct {
	name string
	sql  string
}

var advancedIndexes = []indexDefinition{
	{
		// Usage reports only look at consumption
		name: "idx_credit_transactions_debits",
		sql: `CREATE INDEX IF NOT EXISTS idx_credit_transactions_debits
		ON credit_transactions (account_id, created_at)
		WHERE kind = 'DEBIT'`,
	},
	{
		name: "idx_credit_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_credit_transactions_created_at_brin
		ON credit_transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates the partial and BRIN indexes on the ledger
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies storage settings; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// The balance row is updated in place on every mutation; leave room for HOT updates
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE credit_accounts SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for credit_accounts", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE credit_transactions ALTER COLUMN account_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for account_id", map[string]any{
			"error": err.Error(),
		})
	}
}
