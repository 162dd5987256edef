package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

// OrderRepository implements OrderRepository interface using GORM
type OrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func orderToModel(o *entity.Order) model.Order {
	return model.Order{
		ID:          o.ID,
		AccountID:   o.AccountID,
		Username:    o.Username,
		LineID:      o.LineID,
		ItemID:      o.ItemID,
		ItemName:    o.ItemName,
		UnitPrice:   o.UnitPrice,
		Quantity:    o.Quantity,
		Price:       o.Price,
		PlayerID:    o.PlayerID,
		ServerID:    o.ServerID,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func orderToEntity(m *model.Order) *entity.Order {
	return &entity.Order{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Username:    m.Username,
		LineID:      m.LineID,
		ItemID:      m.ItemID,
		ItemName:    m.ItemName,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		Price:       m.Price,
		PlayerID:    m.PlayerID,
		ServerID:    m.ServerID,
		Status:      entity.OrderStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
}

func ordersToEntities(rows []model.Order) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, orderToEntity(&rows[i]))
	}
	return orders
}

// Create saves a new order
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := orderToModel(order)
	// Omit the association so gorm never upserts the account row
	err := conn(ctx, r.db).Omit("Account").Create(&m).Error
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Order code already used", map[string]any{"order_id": order.ID})
		} else {
			r.logger.Error("Failed to create order", map[string]any{
				"order_id": order.ID,
				"error":    err.Error(),
			})
		}
		return r.errorClassifier.Translate(err, nil, errs.ErrDuplicateOrderID, order.ID)
	}
	return nil
}

// GetByID retrieves an order by its code
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var m model.Order
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrOrderNotFound, nil, id)
	}
	return orderToEntity(&m), nil
}

// UpdateStatus moves an order between statuses with a status predicate
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus, at time.Time) error {
	updates := map[string]any{"status": string(to)}
	if to == entity.OrderCompleted {
		updates["completed_at"] = at
	}

	result := conn(ctx, r.db).Model(&model.Order{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("Failed to update order status", map[string]any{
			"order_id": id,
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrOrderNotFound, nil, id)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: order %s is %s", errs.ErrInvalidStatusTransition, id, current.Status)
}

// ListByAccount returns the orders of one account, newest first
func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Order, error) {
	var rows []model.Order
	err := conn(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, accountID)
	}
	return ordersToEntities(rows), nil
}

// List returns orders with the given status, or all orders when status is empty
func (r *OrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	query := conn(ctx, r.db).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []model.Order
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, string(status))
	}
	return ordersToEntities(rows), nil
}
