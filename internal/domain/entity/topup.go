package entity

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TopUpStatus defines possible status values for a top-up request
type TopUpStatus string

// TopUpStatus constants
const (
	TopUpPending  TopUpStatus = "pending"
	TopUpApproved TopUpStatus = "approved"
	TopUpRejected TopUpStatus = "rejected"
)

// TopUpRequest is a user-submitted request to fund the wallet, backed by payment evidence
type TopUpRequest struct {
	ID          string
	AccountID   string
	Username    string
	Amount      int64
	EvidenceURL string
	Status      TopUpStatus
	CreatedAt   time.Time
	ReviewedAt  *time.Time
	ReviewedBy  string
	BonusCoins  int64
}

// NewTopUpRequest creates a pending request
func NewTopUpRequest(id string, account *Account, amount int64, evidenceURL string, timeProvider coreport.TimeProvider) (*TopUpRequest, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: top-up amount must be positive", errs.ErrInvalidAmount)
	}
	evidenceURL = strings.TrimSpace(evidenceURL)
	if err := ValidateEvidenceURL(evidenceURL); err != nil {
		return nil, err
	}

	return &TopUpRequest{
		ID:          id,
		AccountID:   account.ID,
		Username:    account.DisplayName,
		Amount:      amount,
		EvidenceURL: evidenceURL,
		Status:      TopUpPending,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// ValidateEvidenceURL accepts absolute http(s) URLs only
func ValidateEvidenceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: evidence must be an http(s) URL", errs.ErrInvalidEvidence)
	}
	return nil
}

// CanTransitionTopUp reports whether a request may move between the two statuses
func CanTransitionTopUp(from, to TopUpStatus) bool {
	return from == TopUpPending && (to == TopUpApproved || to == TopUpRejected)
}

// Approve marks a pending request approved
func (r *TopUpRequest) Approve(reviewer string, bonusCoins int64, timeProvider coreport.TimeProvider) error {
	if !CanTransitionTopUp(r.Status, TopUpApproved) {
		return fmt.Errorf("%w: top-up %s is %s", errs.ErrInvalidStatusTransition, r.ID, r.Status)
	}
	now := timeProvider.Now()
	r.Status = TopUpApproved
	r.ReviewedAt = &now
	r.ReviewedBy = reviewer
	r.BonusCoins = bonusCoins
	return nil
}

// Reject marks a pending request rejected
func (r *TopUpRequest) Reject(reviewer string, timeProvider coreport.TimeProvider) error {
	if !CanTransitionTopUp(r.Status, TopUpRejected) {
		return fmt.Errorf("%w: top-up %s is %s", errs.ErrInvalidStatusTransition, r.ID, r.Status)
	}
	now := timeProvider.Now()
	r.Status = TopUpRejected
	r.ReviewedAt = &now
	r.ReviewedBy = reviewer
	return nil
}

// Summary renders the broadcast text for a new request
func (r *TopUpRequest) Summary() string {
	return fmt.Sprintf("New top-up request %s\nUser: %s\nAmount: %s\nTime: %s",
		r.ID, r.Username, FormatAmount(r.Amount), r.CreatedAt.Format(time.RFC3339))
}

// BonusCoins returns floor(amount * percent / 100)
func BonusCoins(amount int64, percent decimal.Decimal) int64 {
	if amount <= 0 || !percent.IsPositive() {
		return 0
	}
	return decimal.NewFromInt(amount).
		Mul(percent).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
}
