package persistence

import (
	"context"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// OrderRepository defines methods to interact with order data
type OrderRepository interface {
	// Create saves a new order
	//
	// Possible errors:
	// - ErrDuplicateOrderID: If the order code is already used
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, order *entity.Order) error

	// GetByID retrieves an order by its code
	//
	// Possible errors:
	// - ErrOrderNotFound: If order doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus moves an order from one status to another only if it is
	// currently in the from status. at is stored as the completion time when
	// the target status is completed.
	//
	// Possible errors:
	// - ErrOrderNotFound: If order doesn't exist
	// - ErrInvalidStatusTransition: If the order is not in the from status
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus, at time.Time) error

	// ListByAccount returns the orders of one account, newest first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Order, error)

	// List returns all orders with the given status, or every order when status is empty, newest first
	List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
}
