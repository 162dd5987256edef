package notification

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// NotificationUseCase handles admin messages and per-account inboxes
type NotificationUseCase struct {
	accountRepo      persistence.AccountRepository
	notificationRepo persistence.NotificationRepository
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewNotificationUseCase creates a new NotificationUseCase
func NewNotificationUseCase(
	accountRepo persistence.AccountRepository,
	notificationRepo persistence.NotificationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Send delivers one notification to one existing account
func (u *NotificationUseCase) Send(ctx context.Context, accountID, title, message string) (*entity.Notification, error) {
	notification, err := entity.NewNotification(uuid.NewString(), accountID, title, message, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if _, err := u.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	u.logger.Info("Notification sent", map[string]any{
		"notification_id": notification.ID,
		"account_id":      accountID,
	})
	return notification, nil
}

// Broadcast writes one copy of an announcement per account in a single batch
func (u *NotificationUseCase) Broadcast(ctx context.Context, title, message string) (int, error) {
	if err := entity.ValidateMessage(title, message); err != nil {
		return 0, err
	}

	accounts, err := u.accountRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(accounts) == 0 {
		return 0, nil
	}

	notifications := lo.Map(accounts, func(account *entity.Account, _ int) *entity.Notification {
		// Title and message were validated above and account ids are never blank
		n, _ := entity.NewNotification(uuid.NewString(), account.ID, title, message, u.timeProvider)
		return n
	})

	if err := u.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, err
	}

	u.logger.Info("Announcement broadcast", map[string]any{
		"recipients": len(notifications),
	})
	return len(notifications), nil
}

// List returns the inbox of an account, newest first
func (u *NotificationUseCase) List(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	if accountID == "" {
		return nil, errs.ErrInvalidAccountID
	}
	return u.notificationRepo.ListByAccount(ctx, accountID)
}

// UnreadCount counts unread notifications of an account
func (u *NotificationUseCase) UnreadCount(ctx context.Context, accountID string) (int64, error) {
	if accountID == "" {
		return 0, errs.ErrInvalidAccountID
	}
	return u.notificationRepo.CountUnread(ctx, accountID)
}

// MarkRead flags one of the account's notifications as read
func (u *NotificationUseCase) MarkRead(ctx context.Context, accountID, notificationID string) error {
	if accountID == "" {
		return errs.ErrInvalidAccountID
	}
	return u.notificationRepo.MarkRead(ctx, accountID, notificationID)
}
