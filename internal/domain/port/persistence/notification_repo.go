package persistence

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// NotificationRepository defines methods to interact with notifications
type NotificationRepository interface {
	// Create saves one notification
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch saves several notifications all-or-nothing
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	// ListByAccount returns the notifications of one account, newest first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error)

	// CountUnread counts the unread notifications of one account
	CountUnread(ctx context.Context, accountID string) (int64, error)

	// MarkRead flags a notification as read. Only the owner may do so.
	//
	// Possible errors:
	// - ErrNotificationNotFound: If it doesn't exist or belongs to another account
	// - ErrDatabaseConnection: If database connection fails
	MarkRead(ctx context.Context, accountID, id string) error
}
