package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// AccountUseCase defines account and wallet operations
type AccountUseCase interface {
	// Register creates an account with a zero balance
	Register(ctx context.Context, id, displayName, email string) (*entity.Account, error)

	// GetAccount retrieves an account
	GetAccount(ctx context.Context, id string) (*entity.Account, error)

	// GetBalance returns the wallet view of an account
	GetBalance(ctx context.Context, id string) (*entity.BalanceResponse, error)

	// ListAccounts returns every account
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// Debit removes amount from the wallet with a version-checked write,
	// retrying on conflicts. Never drives the balance negative.
	Debit(ctx context.Context, id string, amount int64) (*entity.Account, error)

	// Credit adds amount to the wallet unconditionally
	Credit(ctx context.Context, id string, amount int64) (*entity.Account, error)

	// AdminAdjust credits a positive delta or debits a negative one
	AdminAdjust(ctx context.Context, id string, delta int64) (*entity.Account, error)
}
