package boltstore

import (
	"context"
	"fmt"
	"slices"

	bolt "github.com/boltdb/bolt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// NotificationRepository implements NotificationRepository on bolt
type NotificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Create saves one notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.CreateBatch(ctx, []*entity.Notification{notification})
}

// CreateBatch saves all notifications in one transaction
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	return r.store.update(ctx, "create notifications", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotifications)
		for _, n := range notifications {
			if b.Get([]byte(n.ID)) != nil {
				return fmt.Errorf("%w: notification %s already exists", errs.ErrConstraintViolation, n.ID)
			}
			if err := putJSON(b, n.ID, n); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByAccount returns the notifications of one account, newest first
func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	notifications := []*entity.Notification{}
	err := r.store.view(ctx, "list notifications", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketNotifications), func(n *entity.Notification) error {
			if n.AccountID == accountID {
				notifications = append(notifications, n)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(notifications, func(a, b *entity.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return notifications, nil
}

// CountUnread counts the unread notifications of one account
func (r *NotificationRepository) CountUnread(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := r.store.view(ctx, "count unread notifications", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketNotifications), func(n *entity.Notification) error {
			if n.AccountID == accountID && !n.Read {
				count++
			}
			return nil
		})
	})
	return count, err
}

// MarkRead flags a notification owned by accountID as read
func (r *NotificationRepository) MarkRead(ctx context.Context, accountID, id string) error {
	return r.store.update(ctx, "mark notification read", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotifications)

		var n entity.Notification
		found, err := getJSON(b, id, &n)
		if err != nil {
			return err
		}
		if !found || n.AccountID != accountID {
			return fmt.Errorf("%w: %s", errs.ErrNotificationNotFound, id)
		}
		if n.Read {
			return nil
		}

		n.Read = true
		return putJSON(b, id, &n)
	})
}
