package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

// notificationBatchSize bounds the rows per INSERT when broadcasting
const notificationBatchSize = 500

// NotificationRepository implements NotificationRepository interface using GORM
type NotificationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func notificationToModel(n *entity.Notification) model.Notification {
	return model.Notification{
		ID:        n.ID,
		AccountID: n.AccountID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
	}
}

// Create saves one notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	m := notificationToModel(notification)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		r.logger.Error("Failed to create notification", map[string]any{
			"notification_id": notification.ID,
			"error":           err.Error(),
		})
		return r.errorClassifier.Translate(err, nil, nil, notification.ID)
	}
	return nil
}

// CreateBatch saves several notifications in one transaction
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	rows := lo.Map(notifications, func(n *entity.Notification, _ int) model.Notification {
		return notificationToModel(n)
	})
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, notificationBatchSize).Error
	})
	if err != nil {
		r.logger.Error("Failed to create notification batch", map[string]any{
			"count": len(rows),
			"error": err.Error(),
		})
		return r.errorClassifier.Translate(err, nil, nil, "batch")
	}
	return nil
}

// ListByAccount returns the notifications of one account, newest first
func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	var rows []model.Notification
	err := conn(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, accountID)
	}

	return lo.Map(rows, func(m model.Notification, _ int) *entity.Notification {
		return &entity.Notification{
			ID:        m.ID,
			AccountID: m.AccountID,
			Title:     m.Title,
			Message:   m.Message,
			Read:      m.Read,
			OrderID:   m.OrderID,
			CreatedAt: m.CreatedAt,
		}
	}), nil
}

// CountUnread counts the unread notifications of one account
func (r *NotificationRepository) CountUnread(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Notification{}).
		Where("account_id = ? AND read = ?", accountID, false).
		Count(&count).Error
	if err != nil {
		return 0, r.errorClassifier.Translate(err, nil, nil, accountID)
	}
	return count, nil
}

// MarkRead flags a notification as read; the account predicate enforces ownership
func (r *NotificationRepository) MarkRead(ctx context.Context, accountID, id string) error {
	result := conn(ctx, r.db).Model(&model.Notification{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("read", true)
	if result.Error != nil {
		return r.errorClassifier.Translate(result.Error, nil, nil, id)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errs.ErrNotificationNotFound, id)
	}
	return nil
}
