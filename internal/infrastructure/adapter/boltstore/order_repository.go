package boltstore

import (
	"context"
	"fmt"
	"slices"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// OrderRepository implements OrderRepository on bolt
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create saves a new order, refusing a code that is already taken
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.store.update(ctx, "create order", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOrders)
		if b.Get([]byte(order.ID)) != nil {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateOrderID, order.ID)
		}
		return putJSON(b, order.ID, order)
	})
}

// GetByID retrieves an order by its code
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.store.view(ctx, "get order", func(tx *bolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketOrders), id, &order)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrOrderNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order between statuses if it is still in from
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus, at time.Time) error {
	return r.store.update(ctx, "update order status", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOrders)

		var order entity.Order
		found, err := getJSON(b, id, &order)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrOrderNotFound, id)
		}
		if order.Status != from {
			return fmt.Errorf("%w: order %s is %s", errs.ErrInvalidStatusTransition, id, order.Status)
		}

		order.Status = to
		if to == entity.OrderCompleted {
			order.CompletedAt = &at
		}
		return putJSON(b, id, &order)
	})
}

// ListByAccount returns the orders of one account, newest first
func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Order, error) {
	return r.list(ctx, func(o *entity.Order) bool { return o.AccountID == accountID })
}

// List returns all orders with the status, or all orders when status is empty
func (r *OrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return r.list(ctx, func(o *entity.Order) bool { return status == "" || o.Status == status })
}

func (r *OrderRepository) list(ctx context.Context, keep func(*entity.Order) bool) ([]*entity.Order, error) {
	orders := []*entity.Order{}
	err := r.store.view(ctx, "list orders", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketOrders), func(o *entity.Order) error {
			if keep(o) {
				orders = append(orders, o)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders, nil
}
