package migration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(db); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(db, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Storefront schema"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// autoMigrateModels auto-migrates database models; parents first for the foreign keys
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return db.AutoMigrate(
		&model.Account{},
		&model.Order{},
		&model.TopUp{},
		&model.Notification{},
		&model.PurchaseIntent{},
		&model.ImageSetting{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(db *gorm.DB, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		if err := m.addWalletConstraints(db); err != nil {
			return err
		}
		fallthrough
	case "1.0.0":
		return m.addIntentStateConstraint(db)
	}
	return nil
}

// addWalletConstraints makes the store itself refuse negative balances
func (m *MigrationManager) addWalletConstraints(db *gorm.DB) error {
	m.logger.Info("Adding wallet constraints", nil)

	statements := []string{
		`ALTER TABLE accounts DROP CONSTRAINT IF EXISTS chk_accounts_balance_non_negative`,
		`ALTER TABLE accounts ADD CONSTRAINT chk_accounts_balance_non_negative CHECK (balance >= 0)`,
		`ALTER TABLE accounts DROP CONSTRAINT IF EXISTS chk_accounts_coins_non_negative`,
		`ALTER TABLE accounts ADD CONSTRAINT chk_accounts_coins_non_negative CHECK (coins >= 0)`,
		`ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_price_positive`,
		`ALTER TABLE orders ADD CONSTRAINT chk_orders_price_positive CHECK (price > 0 AND quantity > 0)`,
	}
	return execAll(db, statements)
}

// addIntentStateConstraint limits purchase intents to the known states
func (m *MigrationManager) addIntentStateConstraint(db *gorm.DB) error {
	m.logger.Info("Adding purchase intent state constraint", nil)

	statements := []string{
		`ALTER TABLE purchase_intents DROP CONSTRAINT IF EXISTS chk_purchase_intents_state`,
		`ALTER TABLE purchase_intents ADD CONSTRAINT chk_purchase_intents_state CHECK (state IN
			('started', 'debited', 'recorded', 'compensated', 'compensation_failed', 'abandoned'))`,
	}
	return execAll(db, statements)
}

func execAll(db *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
