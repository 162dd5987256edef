package order

import (
	"context"
	"fmt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// OrderUseCase handles order administration and history
type OrderUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewOrderUseCase creates a new OrderUseCase
func NewOrderUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *OrderUseCase {
	return &OrderUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Complete marks a pending order completed and writes the owner's
// notification in the same transaction; either both land or neither does
func (u *OrderUseCase) Complete(ctx context.Context, orderID string) (*entity.Order, error) {
	var completed *entity.Order
	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		orders := u.uow.GetOrderRepository(txCtx)
		order, err := orders.GetByID(txCtx, orderID)
		if err != nil {
			return err
		}

		if err := order.MarkCompleted(u.timeProvider); err != nil {
			return err
		}
		if err := orders.UpdateStatus(txCtx, order.ID, entity.OrderPending, entity.OrderCompleted, *order.CompletedAt); err != nil {
			return err
		}

		notification := entity.NewOrderCompletedNotification(uuid.NewString(), order, u.timeProvider)
		if err := u.uow.GetNotificationRepository(txCtx).Create(txCtx, notification); err != nil {
			return err
		}

		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Order completed", map[string]any{
		"order_id":   completed.ID,
		"account_id": completed.AccountID,
		"price":      completed.Price,
	})
	return completed, nil
}

// GetOrder retrieves an order
func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return u.uow.GetOrderRepository(ctx).GetByID(ctx, orderID)
}

// ListByAccount returns the orders of one account, newest first
func (u *OrderUseCase) ListByAccount(ctx context.Context, accountID string) ([]*entity.Order, error) {
	if accountID == "" {
		return nil, errs.ErrInvalidAccountID
	}
	return u.uow.GetOrderRepository(ctx).ListByAccount(ctx, accountID)
}

// ListOrders returns orders with the status, or all when status is empty
func (u *OrderUseCase) ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	switch status {
	case "", entity.OrderPending, entity.OrderCompleted, entity.OrderFailed:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidRequest, status)
	}
	return u.uow.GetOrderRepository(ctx).List(ctx, status)
}
