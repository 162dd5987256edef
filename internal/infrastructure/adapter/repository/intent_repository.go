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

// IntentRepository implements IntentRepository interface using GORM
type IntentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewIntentRepository creates a new IntentRepository instance
func NewIntentRepository(db *gorm.DB, logger coreport.Logger) *IntentRepository {
	return &IntentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func intentToModel(i *entity.PurchaseIntent) model.PurchaseIntent {
	m := model.PurchaseIntent{
		ID:        i.ID,
		AccountID: i.AccountID,
		OrderID:   i.OrderID,
		Amount:    i.Amount,
		State:     string(i.State),
		LastError: i.LastError,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.RequestID != "" {
		requestID := i.RequestID
		m.RequestID = &requestID
	}
	return m
}

func intentToEntity(m *model.PurchaseIntent) *entity.PurchaseIntent {
	i := &entity.PurchaseIntent{
		ID:        m.ID,
		AccountID: m.AccountID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		State:     entity.IntentState(m.State),
		LastError: m.LastError,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.RequestID != nil {
		i.RequestID = *m.RequestID
	}
	return i
}

// Create saves a new intent; the unique request key index rejects replays
func (r *IntentRepository) Create(ctx context.Context, intent *entity.PurchaseIntent) error {
	m := intentToModel(intent)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) && intent.RequestID != "" {
			r.logger.Warn("Purchase request key reused", map[string]any{
				"request_id": intent.RequestID,
				"account_id": intent.AccountID,
			})
			return fmt.Errorf("%w: %s", errs.ErrDuplicatePurchase, intent.RequestID)
		}
		r.logger.Error("Failed to create purchase intent", map[string]any{
			"intent_id": intent.ID,
			"error":     err.Error(),
		})
		return r.errorClassifier.Translate(err, nil, nil, intent.ID)
	}
	return nil
}

// UpdateState writes the mutable fields of an intent while the stored state equals from
func (r *IntentRepository) UpdateState(ctx context.Context, intent *entity.PurchaseIntent, from entity.IntentState) error {
	result := conn(ctx, r.db).Model(&model.PurchaseIntent{}).
		Where("id = ? AND state = ?", intent.ID, string(from)).
		Updates(map[string]any{
			"order_id":   intent.OrderID,
			"state":      string(intent.State),
			"last_error": intent.LastError,
			"updated_at": intent.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update purchase intent", map[string]any{
			"intent_id": intent.ID,
			"state":     intent.State,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, nil, nil, intent.ID)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var current model.PurchaseIntent
	if err := conn(ctx, r.db).Select("state").Where("id = ?", intent.ID).First(&current).Error; err != nil {
		return r.errorClassifier.Translate(err, errs.ErrIntentNotFound, nil, intent.ID)
	}
	return fmt.Errorf("%w: intent %s is %s", errs.ErrInvalidStatusTransition, intent.ID, current.State)
}

// GetByRequestID resolves a request key to its intent
func (r *IntentRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.PurchaseIntent, error) {
	var m model.PurchaseIntent
	if err := conn(ctx, r.db).Where("request_id = ?", requestID).First(&m).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrIntentNotFound, nil, requestID)
	}
	return intentToEntity(&m), nil
}

// ListOpen returns started or debited intents last updated before the cutoff, oldest first
func (r *IntentRepository) ListOpen(ctx context.Context, updatedBefore time.Time) ([]*entity.PurchaseIntent, error) {
	var rows []model.PurchaseIntent
	err := conn(ctx, r.db).
		Where("state IN ? AND updated_at < ?",
			[]string{string(entity.IntentStarted), string(entity.IntentDebited)}, updatedBefore).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, "open intents")
	}

	intents := make([]*entity.PurchaseIntent, 0, len(rows))
	for i := range rows {
		intents = append(intents, intentToEntity(&rows[i]))
	}
	return intents, nil
}
