package entity

import (
	"fmt"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
)

// IntentState tracks how far a purchase got
type IntentState string

// IntentState constants
const (
	IntentStarted            IntentState = "started"
	IntentDebited            IntentState = "debited"
	IntentRecorded           IntentState = "recorded"
	IntentCompensated        IntentState = "compensated"
	IntentCompensationFailed IntentState = "compensation_failed"
	IntentAbandoned          IntentState = "abandoned"
)

var intentTransitions = map[IntentState][]IntentState{
	IntentStarted: {IntentDebited, IntentRecorded, IntentAbandoned},
	IntentDebited: {IntentRecorded, IntentCompensated, IntentCompensationFailed},
}

// PurchaseIntent is written before the debit so that an interrupted purchase
// can be finished or refunded later
type PurchaseIntent struct {
	ID        string
	RequestID string // Optional client idempotency key
	AccountID string
	OrderID   string // Order code the purchase records under
	Amount    int64  // Charge to debit
	State     IntentState
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPurchaseIntent creates an intent in the started state
func NewPurchaseIntent(id, requestID, accountID, orderID string, amount int64, timeProvider coreport.TimeProvider) *PurchaseIntent {
	now := timeProvider.Now()
	return &PurchaseIntent{
		ID:        id,
		RequestID: requestID,
		AccountID: accountID,
		OrderID:   orderID,
		Amount:    amount,
		State:     IntentStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTerminal reports whether the intent needs no further processing
func (i *PurchaseIntent) IsTerminal() bool {
	_, open := intentTransitions[i.State]
	return !open
}

// Transition moves the intent to the next state, recording the cause of a failure if any
func (i *PurchaseIntent) Transition(to IntentState, cause error, timeProvider coreport.TimeProvider) error {
	allowed := false
	for _, next := range intentTransitions[i.State] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: intent %s cannot go from %s to %s", errs.ErrInvalidStatusTransition, i.ID, i.State, to)
	}

	i.State = to
	if cause != nil {
		i.LastError = cause.Error()
	}
	i.UpdatedAt = timeProvider.Now()
	return nil
}
