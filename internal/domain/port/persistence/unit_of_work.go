package persistence

import (
	"context"
	"errors"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetIntentRepository returns a purchase intent repository bound to the current transaction
	GetIntentRepository(ctx context.Context) IntentRepository

	// GetOrderRepository returns an order repository bound to the current transaction
	GetOrderRepository(ctx context.Context) OrderRepository

	// GetTopUpRepository returns a top-up repository bound to the current transaction
	GetTopUpRepository(ctx context.Context) TopUpRepository

	// GetNotificationRepository returns a notification repository bound to the current transaction
	GetNotificationRepository(ctx context.Context) NotificationRepository
}

// WithinTransaction runs fn in a transaction, committing when fn succeeds and
// rolling back otherwise. A panic in fn rolls back before it is re-raised.
// Repositories obtained from the unit of work with txCtx take part in the
// transaction.
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return uow.Commit(txCtx)
}
