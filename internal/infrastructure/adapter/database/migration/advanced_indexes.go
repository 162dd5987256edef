package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// indexDefinition is one CREATE INDEX statement and the name it creates
type indexDefinition struct {
	name string
	sql  string
}

// storefrontIndexes serve the listing and sweep queries of the repositories
var storefrontIndexes = []indexDefinition{
	{
		// Pending order queue for admins
		name: "idx_orders_pending_created_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_orders_pending_created_at
			ON orders (created_at) WHERE status = 'pending'`,
	},
	{
		name: "idx_orders_account_created_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_orders_account_created_at
			ON orders (account_id, created_at DESC)`,
	},
	{
		name: "idx_topup_requests_status_created_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_topup_requests_status_created_at
			ON topup_requests (status, created_at)`,
	},
	{
		// Unread badge counts
		name: "idx_notifications_account_unread",
		sql: `CREATE INDEX IF NOT EXISTS idx_notifications_account_unread
			ON notifications (account_id) WHERE read = false`,
	},
	{
		// Reconciliation sweep only ever looks at open intents
		name: "idx_purchase_intents_open",
		sql: `CREATE INDEX IF NOT EXISTS idx_purchase_intents_open
			ON purchase_intents (updated_at) WHERE state IN ('started', 'debited')`,
	},
	{
		name: "idx_orders_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_orders_created_at_brin
			ON orders USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
}

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

// CreateAdvancedIndexes creates partial and BRIN indexes gorm tags cannot express
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range storefrontIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(storefrontIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Accounts are rewritten on every balance change; leave room for HOT updates
	tweaks := []string{
		`ALTER TABLE accounts SET (fillfactor = 80)`,
		`ALTER TABLE purchase_intents SET (fillfactor = 85)`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
