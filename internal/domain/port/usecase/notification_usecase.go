package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// NotificationUseCase defines admin messaging and per-user inboxes
type NotificationUseCase interface {
	// Send delivers one notification to one account
	Send(ctx context.Context, accountID, title, message string) (*entity.Notification, error)

	// Broadcast delivers an announcement to every account and returns how many were written
	Broadcast(ctx context.Context, title, message string) (int, error)

	// List returns the inbox of an account
	List(ctx context.Context, accountID string) ([]*entity.Notification, error)

	// UnreadCount counts unread notifications of an account
	UnreadCount(ctx context.Context, accountID string) (int64, error)

	// MarkRead flags one of the account's notifications as read
	MarkRead(ctx context.Context, accountID, notificationID string) error
}
