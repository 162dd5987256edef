package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// SendNotificationRequest represents an admin message to one account
type SendNotificationRequest struct {
	AccountID string `json:"accountId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// AnnouncementRequest represents an admin message to every account
type AnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AnnouncementResponse reports how many inboxes received an announcement
type AnnouncementResponse struct {
	Delivered int `json:"delivered"`
}

// NotificationResponse represents one inbox entry
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	OrderID   string    `json:"orderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InboxResponse represents the caller's notifications
type InboxResponse struct {
	Unread        int64                  `json:"unread"`
	Notifications []NotificationResponse `json:"notifications"`
}

// NewInboxResponse converts notifications and the unread count
func NewInboxResponse(notifications []*entity.Notification, unread int64) InboxResponse {
	return InboxResponse{
		Unread: unread,
		Notifications: lo.Map(notifications, func(n *entity.Notification, _ int) NotificationResponse {
			return NewNotificationResponse(n)
		}),
	}
}

// NewNotificationResponse converts a Notification entity
func NewNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
	}
}
