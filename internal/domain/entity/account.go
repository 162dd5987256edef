package entity

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

var displayNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]{3,20}$`)

// Account is a registered user's profile and wallet
type Account struct {
	ID          string    // Subject id issued by the auth provider
	DisplayName string    // Unique, compared case-insensitively
	Email       string    // Optional contact address
	balance     int64     // Wallet balance in kyats, never negative (private)
	Coins       int64     // Bonus coins earned from approved top-ups
	Version     uint64    // Bumped on every balance write, used for compare-and-swap
	CreatedAt   time.Time // When the account was registered
	UpdatedAt   time.Time // When the account was last written
}

// NewAccount creates an account with a zero balance
func NewAccount(id, displayName, email string, timeProvider coreport.TimeProvider) (*Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.ErrInvalidAccountID
	}
	if err := ValidateDisplayName(displayName); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Account{
		ID:          id,
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RestoreAccount rebuilds an account from stored state (for repositories)
func RestoreAccount(id, displayName, email string, balance, coins int64, version uint64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		ID:          id,
		DisplayName: displayName,
		Email:       email,
		balance:     balance,
		Coins:       coins,
		Version:     version,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ValidateDisplayName checks length and allowed characters
func ValidateDisplayName(name string) error {
	if !displayNamePattern.MatchString(name) {
		return fmt.Errorf("%w: must be 3-20 letters, digits, '_' or '.'", errs.ErrInvalidDisplayName)
	}
	return nil
}

// ValidateEmail accepts an empty address or a bare RFC 5322 address
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %s", errs.ErrInvalidEmail, email)
	}
	return nil
}

// NormalizeDisplayName returns the key used for uniqueness checks
func NormalizeDisplayName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Balance returns the wallet balance
func (a *Account) Balance() int64 {
	return a.balance
}

// FormattedBalance returns the balance for display, e.g. "7,600 Ks"
func (a *Account) FormattedBalance() string {
	return FormatAmount(a.balance)
}

// CanDeduct checks if the wallet covers the amount
func (a *Account) CanDeduct(amount int64) bool {
	return amount >= 0 && a.balance >= amount
}

// SetBalance updates the balance directly (for repositories)
func (a *Account) SetBalance(balance int64, timeProvider coreport.TimeProvider) {
	a.balance = balance
	a.UpdatedAt = timeProvider.Now()
}

// BalanceAfter returns the balance that results from applying delta,
// rejecting changes that would go negative or overflow
func (a *Account) BalanceAfter(delta int64) (int64, error) {
	if delta >= 0 {
		return AddAmounts(a.balance, delta)
	}
	if delta == -delta || a.balance < -delta {
		return 0, errs.NewInsufficientBalanceError(a.ID, -delta, a.balance)
	}
	return a.balance + delta, nil
}
