package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

// TopUpRepository implements TopUpRepository interface using GORM
type TopUpRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTopUpRepository creates a new TopUpRepository instance
func NewTopUpRepository(db *gorm.DB, logger coreport.Logger) *TopUpRepository {
	return &TopUpRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func topUpToEntity(m *model.TopUp) *entity.TopUpRequest {
	return &entity.TopUpRequest{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Username:    m.Username,
		Amount:      m.Amount,
		EvidenceURL: m.EvidenceURL,
		Status:      entity.TopUpStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		ReviewedAt:  m.ReviewedAt,
		ReviewedBy:  m.ReviewedBy,
		BonusCoins:  m.BonusCoins,
	}
}

func topUpsToEntities(rows []model.TopUp) []*entity.TopUpRequest {
	requests := make([]*entity.TopUpRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, topUpToEntity(&rows[i]))
	}
	return requests
}

// Create saves a new request
func (r *TopUpRepository) Create(ctx context.Context, request *entity.TopUpRequest) error {
	m := model.TopUp{
		ID:          request.ID,
		AccountID:   request.AccountID,
		Username:    request.Username,
		Amount:      request.Amount,
		EvidenceURL: request.EvidenceURL,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		ReviewedAt:  request.ReviewedAt,
		ReviewedBy:  request.ReviewedBy,
		BonusCoins:  request.BonusCoins,
	}
	if err := conn(ctx, r.db).Omit("Account").Create(&m).Error; err != nil {
		r.logger.Error("Failed to create top-up request", map[string]any{
			"request_id": request.ID,
			"error":      err.Error(),
		})
		return r.errorClassifier.Translate(err, nil, nil, request.ID)
	}
	return nil
}

// GetByID retrieves a request
func (r *TopUpRepository) GetByID(ctx context.Context, id string) (*entity.TopUpRequest, error) {
	var m model.TopUp
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrTopUpNotFound, nil, id)
	}
	return topUpToEntity(&m), nil
}

// UpdateReview writes the review fields only while the stored status equals from
func (r *TopUpRepository) UpdateReview(ctx context.Context, request *entity.TopUpRequest, from entity.TopUpStatus) error {
	result := conn(ctx, r.db).Model(&model.TopUp{}).
		Where("id = ? AND status = ?", request.ID, string(from)).
		Updates(map[string]any{
			"status":      string(request.Status),
			"reviewed_at": request.ReviewedAt,
			"reviewed_by": request.ReviewedBy,
			"bonus_coins": request.BonusCoins,
		})
	if result.Error != nil {
		r.logger.Error("Failed to review top-up request", map[string]any{
			"request_id": request.ID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrTopUpNotFound, nil, request.ID)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	current, err := r.GetByID(ctx, request.ID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: top-up %s is %s", errs.ErrInvalidStatusTransition, request.ID, current.Status)
}

// ListByStatus returns requests with the status, or all when status is empty, oldest first
func (r *TopUpRepository) ListByStatus(ctx context.Context, status entity.TopUpStatus) ([]*entity.TopUpRequest, error) {
	query := conn(ctx, r.db).Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []model.TopUp
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, string(status))
	}
	return topUpsToEntities(rows), nil
}

// ListByAccount returns the requests of one account, newest first
func (r *TopUpRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.TopUpRequest, error) {
	var rows []model.TopUp
	err := conn(ctx, r.db).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, nil, nil, accountID)
	}
	return topUpsToEntities(rows), nil
}
