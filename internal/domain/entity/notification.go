package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// Notification is a message shown to one account
type Notification struct {
	ID        string
	AccountID string
	Title     string
	Message   string
	Read      bool
	OrderID   string // Set when the notification was raised by an order
	CreatedAt time.Time
}

// NewNotification creates an unread notification
func NewNotification(id, accountID, title, message string, timeProvider coreport.TimeProvider) (*Notification, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, errs.ErrInvalidAccountID
	}
	if err := ValidateMessage(title, message); err != nil {
		return nil, err
	}

	return &Notification{
		ID:        id,
		AccountID: accountID,
		Title:     strings.TrimSpace(title),
		Message:   strings.TrimSpace(message),
		CreatedAt: timeProvider.Now(),
	}, nil
}

// ValidateMessage requires a non-blank title and body
func ValidateMessage(title, message string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: title and message are required", errs.ErrInvalidRequest)
	}
	return nil
}

// NewOrderCompletedNotification tells the owner an order was fulfilled
func NewOrderCompletedNotification(id string, order *Order, timeProvider coreport.TimeProvider) *Notification {
	return &Notification{
		ID:        id,
		AccountID: order.AccountID,
		Title:     "Order completed",
		Message: fmt.Sprintf("Your order %s for %s (%s) has been completed.",
			order.ID, order.ItemName, FormatAmount(order.Price)),
		OrderID:   order.ID,
		CreatedAt: timeProvider.Now(),
	}
}
