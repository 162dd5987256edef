package boltstore

import (
	"context"
	"errors"
	"fmt"

	bolt "github.com/boltdb/bolt"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
)

// UnitOfWork implements the UnitOfWork interface with a single bolt write transaction
type UnitOfWork struct {
	store         *Store
	accounts      *AccountRepository
	orders        *OrderRepository
	topUps        *TopUpRepository
	notifications *NotificationRepository
	intents       *IntentRepository
}

// NewUnitOfWork creates a unit of work over the store's repositories
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store:         store,
		accounts:      NewAccountRepository(store),
		orders:        NewOrderRepository(store),
		topUps:        NewTopUpRepository(store),
		notifications: NewNotificationRepository(store),
		intents:       NewIntentRepository(store),
	}
}

// Begin starts a write transaction and stores it in the returned context.
// Bolt allows one writer at a time, so other writers wait until Commit or Rollback.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := txFromContext(ctx); ok {
		return nil, fmt.Errorf("%w: transaction already active in context", errs.ErrInternalServer)
	}

	tx, err := u.store.db.Begin(true)
	if err != nil {
		return nil, u.store.translate("begin transaction", err)
	}

	u.store.logger.Debug("Transaction started", nil)
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction in the given context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no transaction in context", errs.ErrInternalServer)
	}

	if err := tx.Commit(); err != nil {
		u.store.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return u.store.translate("commit transaction", err)
	}

	u.store.logger.Debug("Transaction committed", nil)
	return nil
}

// Rollback rolls back the transaction in the given context; rolling back a finished transaction is a no-op
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no transaction in context", errs.ErrInternalServer)
	}

	if err := tx.Rollback(); err != nil && !errors.Is(err, bolt.ErrTxClosed) {
		return u.store.translate("rollback transaction", err)
	}

	u.store.logger.Debug("Transaction rolled back", nil)
	return nil
}

// GetAccountRepository returns the account repository; it joins the context transaction itself
func (u *UnitOfWork) GetAccountRepository(context.Context) persistence.AccountRepository {
	return u.accounts
}

// GetOrderRepository returns the order repository
func (u *UnitOfWork) GetOrderRepository(context.Context) persistence.OrderRepository {
	return u.orders
}

// GetTopUpRepository returns the top-up repository
func (u *UnitOfWork) GetTopUpRepository(context.Context) persistence.TopUpRepository {
	return u.topUps
}

// GetNotificationRepository returns the notification repository
func (u *UnitOfWork) GetNotificationRepository(context.Context) persistence.NotificationRepository {
	return u.notifications
}

// GetIntentRepository returns the purchase intent repository
func (u *UnitOfWork) GetIntentRepository(context.Context) persistence.IntentRepository {
	return u.intents
}
