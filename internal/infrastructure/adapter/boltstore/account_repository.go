package boltstore

import (
	"context"
	"fmt"
	"slices"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// accountRecord is the stored form of an account; the entity keeps its balance private
type accountRecord struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email,omitempty"`
	Balance     int64     `json:"balance"`
	Coins       int64     `json:"coins"`
	Version     uint64    `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newAccountRecord(a *entity.Account) *accountRecord {
	return &accountRecord{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		Balance:     a.Balance(),
		Coins:       a.Coins,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *accountRecord) toEntity() *entity.Account {
	return entity.RestoreAccount(r.ID, r.DisplayName, r.Email, r.Balance, r.Coins, r.Version, r.CreatedAt, r.UpdatedAt)
}

// AccountRepository implements AccountRepository on bolt
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func loadAccount(tx *bolt.Tx, id string) (*accountRecord, error) {
	var rec accountRecord
	found, err := getJSON(tx.Bucket(bucketAccounts), id, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", errs.ErrAccountNotFound, id)
	}
	return &rec, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var account *entity.Account
	err := r.store.view(ctx, "get account", func(tx *bolt.Tx) error {
		rec, err := loadAccount(tx, id)
		if err != nil {
			return err
		}
		account = rec.toEntity()
		return nil
	})
	return account, err
}

// GetByDisplayName retrieves an account by display name, ignoring case
func (r *AccountRepository) GetByDisplayName(ctx context.Context, displayName string) (*entity.Account, error) {
	var account *entity.Account
	err := r.store.view(ctx, "get account by name", func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketAccountNames).Get([]byte(entity.NormalizeDisplayName(displayName)))
		if id == nil {
			return fmt.Errorf("%w: %s", errs.ErrAccountNotFound, displayName)
		}
		rec, err := loadAccount(tx, string(id))
		if err != nil {
			return err
		}
		account = rec.toEntity()
		return nil
	})
	return account, err
}

// Create stores a new account and reserves its display name
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.update(ctx, "create account", func(tx *bolt.Tx) error {
		accounts := tx.Bucket(bucketAccounts)
		names := tx.Bucket(bucketAccountNames)

		if accounts.Get([]byte(account.ID)) != nil {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateAccount, account.ID)
		}
		nameKey := []byte(entity.NormalizeDisplayName(account.DisplayName))
		if names.Get(nameKey) != nil {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateDisplayName, account.DisplayName)
		}

		if err := putJSON(accounts, account.ID, newAccountRecord(account)); err != nil {
			return err
		}
		return names.Put(nameKey, []byte(account.ID))
	})
}

// List returns all accounts ordered by creation time
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	accounts := []*entity.Account{}
	err := r.store.view(ctx, "list accounts", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketAccounts), func(rec *accountRecord) error {
			accounts = append(accounts, rec.toEntity())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(accounts, func(a, b *entity.Account) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return accounts, nil
}

// CompareAndSwapBalance writes newBalance only if the stored version matches
func (r *AccountRepository) CompareAndSwapBalance(ctx context.Context, id string, expectedVersion uint64, newBalance int64) (bool, error) {
	if newBalance < 0 {
		return false, fmt.Errorf("%w: balance cannot be negative", errs.ErrInvalidAmount)
	}

	swapped := false
	err := r.store.update(ctx, "compare and swap balance", func(tx *bolt.Tx) error {
		rec, err := loadAccount(tx, id)
		if err != nil {
			return err
		}
		if rec.Version != expectedVersion {
			return nil
		}

		rec.Balance = newBalance
		rec.Version++
		rec.UpdatedAt = r.store.timeProvider.Now()
		swapped = true
		return putJSON(tx.Bucket(bucketAccounts), id, rec)
	})
	if err != nil {
		return false, err
	}
	return swapped, nil
}

// AdjustBalance adds delta to the balance inside one write transaction
func (r *AccountRepository) AdjustBalance(ctx context.Context, id string, delta int64) (*entity.Account, error) {
	var account *entity.Account
	err := r.store.update(ctx, "adjust balance", func(tx *bolt.Tx) error {
		rec, err := loadAccount(tx, id)
		if err != nil {
			return err
		}

		next, err := rec.toEntity().BalanceAfter(delta)
		if err != nil {
			return err
		}

		rec.Balance = next
		rec.Version++
		rec.UpdatedAt = r.store.timeProvider.Now()
		if err := putJSON(tx.Bucket(bucketAccounts), id, rec); err != nil {
			return err
		}
		account = rec.toEntity()
		return nil
	})
	return account, err
}

// AddCoins adds bonus coins to the account
func (r *AccountRepository) AddCoins(ctx context.Context, id string, coins int64) error {
	return r.store.update(ctx, "add coins", func(tx *bolt.Tx) error {
		rec, err := loadAccount(tx, id)
		if err != nil {
			return err
		}

		total, err := entity.AddAmounts(rec.Coins, coins)
		if err != nil {
			return err
		}
		rec.Coins = total
		rec.UpdatedAt = r.store.timeProvider.Now()
		return putJSON(tx.Bucket(bucketAccounts), id, rec)
	})
}
