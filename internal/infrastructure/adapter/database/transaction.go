package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/repository"
)

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a READ COMMITTED transaction. Balance and status writes
// carry their own predicates, so a stronger level only adds aborts.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := repository.TxFromContext(ctx); ok {
		return ctx, errors.New("transaction already in progress")
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return repository.ContextWithTx(ctx, tx), nil
}

// Commit commits the transaction held by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction held by ctx; an already finished transaction is not an error
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetIntentRepository returns a purchase intent repository in the current transaction
func (u *UnitOfWork) GetIntentRepository(ctx context.Context) persistence.IntentRepository {
	return repository.NewIntentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetOrderRepository returns an order repository in the current transaction
func (u *UnitOfWork) GetOrderRepository(ctx context.Context) persistence.OrderRepository {
	return repository.NewOrderRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTopUpRepository returns a top-up repository in the current transaction
func (u *UnitOfWork) GetTopUpRepository(ctx context.Context) persistence.TopUpRepository {
	return repository.NewTopUpRepository(u.getDbFromContext(ctx), u.logger)
}

// GetNotificationRepository returns a notification repository in the current transaction
func (u *UnitOfWork) GetNotificationRepository(ctx context.Context) persistence.NotificationRepository {
	return repository.NewNotificationRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the transaction from context, falling back to the pool
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := repository.TxFromContext(ctx); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}
