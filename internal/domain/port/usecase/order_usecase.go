package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// OrderUseCase defines order administration and history
type OrderUseCase interface {
	// Complete marks a pending order completed and notifies the owner in one atomic write
	Complete(ctx context.Context, orderID string) (*entity.Order, error)

	// GetOrder retrieves an order
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// ListByAccount returns the orders of one account
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Order, error)

	// ListOrders returns orders with the status, or all when status is empty
	ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
}
