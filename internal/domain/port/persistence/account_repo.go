package persistence

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// AccountRepository defines methods to interact with account and wallet data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If account with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// GetByDisplayName retrieves an account by display name, ignoring case
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account uses the name
	// - ErrDatabaseConnection: If database connection fails
	GetByDisplayName(ctx context.Context, displayName string) (*entity.Account, error)

	// Create stores a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account with the same ID already exists
	// - ErrDuplicateDisplayName: If the display name is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// List returns all accounts ordered by creation time
	List(ctx context.Context) ([]*entity.Account, error)

	// CompareAndSwapBalance writes newBalance and bumps the version only if the
	// stored version still equals expectedVersion. Returns false when another
	// writer got there first.
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrInvalidAmount: If newBalance is negative
	// - ErrDatabaseConnection: If database connection fails
	CompareAndSwapBalance(ctx context.Context, id string, expectedVersion uint64, newBalance int64) (bool, error)

	// AdjustBalance adds delta to the balance atomically and bumps the version.
	// Used for credits; a delta that would make the balance negative is refused.
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrInsufficientBalance: If the result would be negative
	// - ErrAmountOverflow: If the result would overflow
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, id string, delta int64) (*entity.Account, error)

	// AddCoins adds bonus coins to the account
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AddCoins(ctx context.Context, id string, coins int64) error
}
