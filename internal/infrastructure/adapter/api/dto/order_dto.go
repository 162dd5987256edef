package dto

import (
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// PurchaseRequest represents the API request for buying a catalog item
type PurchaseRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
	PlayerID string `json:"playerId"`
	ServerID string `json:"serverId"`
}

// OrderResponse represents an order
type OrderResponse struct {
	ID             string     `json:"orderId"`
	AccountID      string     `json:"accountId"`
	Username       string     `json:"username"`
	LineID         string     `json:"lineId"`
	ItemID         string     `json:"itemId"`
	ItemName       string     `json:"itemName"`
	UnitPrice      int64      `json:"unitPrice"`
	Quantity       int        `json:"quantity"`
	Price          int64      `json:"price"`
	FormattedPrice string     `json:"formattedPrice"`
	PlayerID       string     `json:"playerId,omitempty"`
	ServerID       string     `json:"serverId,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// PurchaseResponse is returned after a successful purchase
type PurchaseResponse struct {
	Order   OrderResponse `json:"order"`
	Message string        `json:"message"`
}

// NewOrderResponse converts an Order entity
func NewOrderResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID,
		AccountID:      order.AccountID,
		Username:       order.Username,
		LineID:         order.LineID,
		ItemID:         order.ItemID,
		ItemName:       order.ItemName,
		UnitPrice:      order.UnitPrice,
		Quantity:       order.Quantity,
		Price:          order.Price,
		FormattedPrice: entity.FormatAmount(order.Price),
		PlayerID:       order.PlayerID,
		ServerID:       order.ServerID,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
		CompletedAt:    order.CompletedAt,
	}
}

// NewOrderResponses converts a list of orders
func NewOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
