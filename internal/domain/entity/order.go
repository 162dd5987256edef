package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// OrderStatus defines possible status values for an order
type OrderStatus string

// OrderStatus constants
const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
)

// Order is the durable record of one purchase
type Order struct {
	ID          string      // Short upper-case alphanumeric code
	AccountID   string      // Owning account
	Username    string      // Display name at purchase time
	LineID      string      // Product line of the item
	ItemID      string      // Catalog item
	ItemName    string      // Item name, suffixed with " xN" for N > 1
	UnitPrice   int64       // Catalog price at purchase time
	Quantity    int         // Units bought
	Price       int64       // Amount charged; never re-derived from the catalog
	PlayerID    string      // Buyer-supplied destination account id
	ServerID    string      // Buyer-supplied server or region id
	Status      OrderStatus // Fulfillment status
	CreatedAt   time.Time   // When the order was recorded
	CompletedAt *time.Time  // When an admin completed the order (nullable)
}

// NewOrder creates a pending order for an already computed charge
func NewOrder(
	id string,
	account *Account,
	item Item,
	quantity int,
	price int64,
	playerID string,
	serverID string,
	timeProvider coreport.TimeProvider,
) *Order {
	return &Order{
		ID:        id,
		AccountID: account.ID,
		Username:  account.DisplayName,
		LineID:    item.LineID,
		ItemID:    item.ID,
		ItemName:  OrderItemName(item.Name, quantity),
		UnitPrice: item.Price,
		Quantity:  quantity,
		Price:     price,
		PlayerID:  strings.TrimSpace(playerID),
		ServerID:  strings.TrimSpace(serverID),
		Status:    OrderPending,
		CreatedAt: timeProvider.Now(),
	}
}

// OrderItemName appends the quantity suffix for multi-unit orders
func OrderItemName(name string, quantity int) string {
	if quantity > 1 {
		return fmt.Sprintf("%s x%d", name, quantity)
	}
	return name
}

// CanTransitionOrder reports whether an order may move between the two statuses
func CanTransitionOrder(from, to OrderStatus) bool {
	return from == OrderPending && (to == OrderCompleted || to == OrderFailed)
}

// MarkCompleted moves a pending order to completed
func (o *Order) MarkCompleted(timeProvider coreport.TimeProvider) error {
	if !CanTransitionOrder(o.Status, OrderCompleted) {
		return fmt.Errorf("%w: order %s is %s", errs.ErrInvalidStatusTransition, o.ID, o.Status)
	}
	now := timeProvider.Now()
	o.Status = OrderCompleted
	o.CompletedAt = &now
	return nil
}

// Summary renders the broadcast text for a newly recorded order
func (o *Order) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", o.ID)
	fmt.Fprintf(&b, "User: %s\n", o.Username)
	fmt.Fprintf(&b, "Item: %s\n", o.ItemName)
	fmt.Fprintf(&b, "Price: %s\n", FormatAmount(o.Price))
	if o.PlayerID != "" {
		fmt.Fprintf(&b, "Player ID: %s\n", o.PlayerID)
	}
	if o.ServerID != "" {
		fmt.Fprintf(&b, "Server ID: %s\n", o.ServerID)
	}
	fmt.Fprintf(&b, "Time: %s", o.CreatedAt.Format(time.RFC3339))
	return b.String()
}
