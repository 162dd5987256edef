package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/model"
)

// accountNameKeyIndex is the unique index gorm creates for model.Account.NameKey
const accountNameKeyIndex = "idx_accounts_name_key"

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	return entity.RestoreAccount(m.ID, m.DisplayName, m.Email, m.Balance, m.Coins, m.Version, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID string) error {
	translated := r.errorClassifier.Translate(err, errs.ErrAccountNotFound, errs.ErrDuplicateAccount, accountID)
	if r.errorClassifier.Classify(err) == NotFoundError {
		r.logger.Debug("Account not found", map[string]any{
			"account_id": accountID,
			"operation":  operation,
		})
		return translated
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	})
	return translated
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var m model.Account
	if err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting account", err, id)
	}
	return accountToEntity(&m), nil
}

// GetByDisplayName retrieves an account by display name, ignoring case
func (r *AccountRepository) GetByDisplayName(ctx context.Context, displayName string) (*entity.Account, error) {
	var m model.Account
	err := conn(ctx, r.db).
		Where("name_key = ?", entity.NormalizeDisplayName(displayName)).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting account by name", err, displayName)
	}
	return accountToEntity(&m), nil
}

// Create stores a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := model.Account{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		NameKey:     entity.NormalizeDisplayName(account.DisplayName),
		Email:       account.Email,
		Balance:     account.Balance(),
		Coins:       account.Coins,
		Version:     account.Version,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}

	err := conn(ctx, r.db).Create(&m).Error
	if err == nil {
		r.logger.Debug("Account row created", map[string]any{"account_id": account.ID})
		return nil
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		if r.errorClassifier.ViolatedConstraint(err) == accountNameKeyIndex {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateDisplayName, account.DisplayName)
		}
		return fmt.Errorf("%w: %s", errs.ErrDuplicateAccount, account.ID)
	}
	return r.handleDatabaseError("creating account", err, account.ID)
}

// List returns all accounts ordered by creation time
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []model.Account
	if err := conn(ctx, r.db).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing accounts", err, "")
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, accountToEntity(&rows[i]))
	}
	return accounts, nil
}

// CompareAndSwapBalance writes newBalance only if the stored version matches.
// The version predicate makes the write a single conditional UPDATE.
func (r *AccountRepository) CompareAndSwapBalance(ctx context.Context, id string, expectedVersion uint64, newBalance int64) (bool, error) {
	if newBalance < 0 {
		return false, fmt.Errorf("%w: balance cannot be negative", errs.ErrInvalidAmount)
	}

	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"balance":    newBalance,
			"version":    gorm.Expr("version + 1"),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("swapping balance", result.Error, id)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	// Nothing matched: either a stale version or a missing account
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// AdjustBalance adds delta to the balance under a row lock
func (r *AccountRepository) AdjustBalance(ctx context.Context, id string, delta int64) (*entity.Account, error) {
	var account *entity.Account

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var m model.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&m).Error; err != nil {
			return r.handleDatabaseError("locking account", err, id)
		}

		next, err := accountToEntity(&m).BalanceAfter(delta)
		if err != nil {
			return err
		}

		m.Balance = next
		m.Version++
		m.UpdatedAt = r.timeProvider.Now()
		err = tx.Model(&model.Account{}).Where("id = ?", id).Updates(map[string]any{
			"balance":    m.Balance,
			"version":    m.Version,
			"updated_at": m.UpdatedAt,
		}).Error
		if err != nil {
			return r.handleDatabaseError("adjusting balance", err, id)
		}

		account = accountToEntity(&m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// AddCoins adds bonus coins to the account
func (r *AccountRepository) AddCoins(ctx context.Context, id string, coins int64) error {
	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"coins":      gorm.Expr("coins + ?", coins),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("adding coins", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errs.ErrAccountNotFound, id)
	}
	return nil
}
