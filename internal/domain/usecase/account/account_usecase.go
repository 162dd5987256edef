package account

import (
	"context"
	"fmt"
	"math"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
)

// AccountUseCase handles account and wallet business logic
type AccountUseCase struct {
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retry        RetryPolicy
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	retry RetryPolicy,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
		retry:        retry,
	}
}

// Register creates an account with a zero balance
func (u *AccountUseCase) Register(ctx context.Context, id, displayName, email string) (*entity.Account, error) {
	account, err := entity.NewAccount(id, displayName, email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if _, err := u.accountRepo.GetByDisplayName(ctx, displayName); err == nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateDisplayName, displayName)
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	u.logger.Info("Account registered", map[string]any{
		"account_id":   account.ID,
		"display_name": account.DisplayName,
	})
	return account, nil
}

// GetAccount retrieves an account
func (u *AccountUseCase) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	if id == "" {
		return nil, errs.ErrInvalidAccountID
	}
	return u.accountRepo.GetByID(ctx, id)
}

// GetBalance returns the wallet view of an account
func (u *AccountUseCase) GetBalance(ctx context.Context, id string) (*entity.BalanceResponse, error) {
	account, err := u.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	response := entity.AccountToBalanceResponse(account)
	return &response, nil
}

// ListAccounts returns every account
func (u *AccountUseCase) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return u.accountRepo.List(ctx)
}

// Credit adds amount to the wallet unconditionally
func (u *AccountUseCase) Credit(ctx context.Context, id string, amount int64) (*entity.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit must be positive", errs.ErrInvalidAmount)
	}

	account, err := u.accountRepo.AdjustBalance(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Wallet credited", map[string]any{
		"account_id": id,
		"amount":     amount,
		"balance":    account.Balance(),
	})
	return account, nil
}

// AdminAdjust credits a positive delta or debits a negative one
func (u *AccountUseCase) AdminAdjust(ctx context.Context, id string, delta int64) (*entity.Account, error) {
	var (
		account *entity.Account
		err     error
	)
	switch {
	case delta > 0:
		account, err = u.Credit(ctx, id, delta)
	case delta < 0 && delta != math.MinInt64:
		account, err = u.Debit(ctx, id, -delta)
	default:
		return nil, fmt.Errorf("%w: adjustment must be non-zero", errs.ErrInvalidAmount)
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("Manual balance adjustment", map[string]any{
		"account_id": id,
		"delta":      delta,
		"balance":    account.Balance(),
	})
	return account, nil
}
