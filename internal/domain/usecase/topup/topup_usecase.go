package topup

import (
	"context"
	"fmt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/messaging"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Limits bounds top-up amounts and sets the bonus paid on approval
type Limits struct {
	MinAmount        int64
	MaxAmount        int64
	BonusCoinPercent decimal.Decimal
}

// TopUpUseCase handles the submit and review workflow for wallet funding
type TopUpUseCase struct {
	uow          persistence.UnitOfWork
	broadcaster  messaging.Broadcaster
	limits       Limits
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTopUpUseCase creates a new TopUpUseCase
func NewTopUpUseCase(
	uow persistence.UnitOfWork,
	broadcaster messaging.Broadcaster,
	limits Limits,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TopUpUseCase {
	return &TopUpUseCase{
		uow:          uow,
		broadcaster:  broadcaster,
		limits:       limits,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Submit records a pending request and posts the evidence to staff
func (u *TopUpUseCase) Submit(ctx context.Context, accountID string, amount int64, evidenceURL string) (*entity.TopUpRequest, error) {
	if err := u.checkAmount(amount); err != nil {
		return nil, err
	}

	account, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	request, err := entity.NewTopUpRequest(uuid.NewString(), account, amount, evidenceURL, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetTopUpRepository(ctx).Create(ctx, request); err != nil {
		return nil, err
	}

	u.logger.Info("Top-up request submitted", map[string]any{
		"request_id": request.ID,
		"account_id": request.AccountID,
		"amount":     request.Amount,
	})

	if err := u.broadcaster.SendWithImage(ctx, request.Summary(), request.EvidenceURL); err != nil {
		u.logger.Warn("Failed to broadcast top-up request", map[string]any{
			"request_id": request.ID,
			"error":      err,
		})
	}
	return request, nil
}

func (u *TopUpUseCase) checkAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: top-up amount must be positive", errs.ErrInvalidAmount)
	}
	if u.limits.MinAmount > 0 && amount < u.limits.MinAmount {
		return fmt.Errorf("%w: minimum top-up is %s", errs.ErrInvalidAmount, entity.FormatAmount(u.limits.MinAmount))
	}
	if u.limits.MaxAmount > 0 && amount > u.limits.MaxAmount {
		return fmt.Errorf("%w: maximum top-up is %s", errs.ErrInvalidAmount, entity.FormatAmount(u.limits.MaxAmount))
	}
	return nil
}

// Approve marks a pending request approved and credits the wallet plus
// bonus coins in one transaction. A request that is no longer pending is
// refused with ErrInvalidStatusTransition and nothing is credited.
func (u *TopUpUseCase) Approve(ctx context.Context, requestID, reviewer string) (*entity.TopUpRequest, error) {
	var approved *entity.TopUpRequest
	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		request, err := u.uow.GetTopUpRepository(txCtx).GetByID(txCtx, requestID)
		if err != nil {
			return err
		}

		bonus := entity.BonusCoins(request.Amount, u.limits.BonusCoinPercent)
		if err := request.Approve(reviewer, bonus, u.timeProvider); err != nil {
			return err
		}
		if err := u.uow.GetTopUpRepository(txCtx).UpdateReview(txCtx, request, entity.TopUpPending); err != nil {
			return err
		}

		accounts := u.uow.GetAccountRepository(txCtx)
		if _, err := accounts.AdjustBalance(txCtx, request.AccountID, request.Amount); err != nil {
			return err
		}
		if bonus > 0 {
			if err := accounts.AddCoins(txCtx, request.AccountID, bonus); err != nil {
				return err
			}
		}

		approved = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Top-up request approved", map[string]any{
		"request_id":  approved.ID,
		"account_id":  approved.AccountID,
		"amount":      approved.Amount,
		"bonus_coins": approved.BonusCoins,
		"reviewer":    reviewer,
	})
	return approved, nil
}

// Reject marks a pending request rejected without moving funds
func (u *TopUpUseCase) Reject(ctx context.Context, requestID, reviewer string) (*entity.TopUpRequest, error) {
	repo := u.uow.GetTopUpRepository(ctx)
	request, err := repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := request.Reject(reviewer, u.timeProvider); err != nil {
		return nil, err
	}
	if err := repo.UpdateReview(ctx, request, entity.TopUpPending); err != nil {
		return nil, err
	}

	u.logger.Info("Top-up request rejected", map[string]any{
		"request_id": request.ID,
		"account_id": request.AccountID,
		"reviewer":   reviewer,
	})
	return request, nil
}

// ListByStatus returns requests with the status, or all when status is empty
func (u *TopUpUseCase) ListByStatus(ctx context.Context, status entity.TopUpStatus) ([]*entity.TopUpRequest, error) {
	switch status {
	case "", entity.TopUpPending, entity.TopUpApproved, entity.TopUpRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidRequest, status)
	}
	return u.uow.GetTopUpRepository(ctx).ListByStatus(ctx, status)
}

// ListByAccount returns the requests of one account
func (u *TopUpUseCase) ListByAccount(ctx context.Context, accountID string) ([]*entity.TopUpRequest, error) {
	return u.uow.GetTopUpRepository(ctx).ListByAccount(ctx, accountID)
}
