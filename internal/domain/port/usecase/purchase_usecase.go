package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// PurchaseRequest is a buyer's order for one catalog item
type PurchaseRequest struct {
	AccountID string
	ItemID    string
	Quantity  int
	PlayerID  string
	ServerID  string
	RequestID string // Optional idempotency key
}

// ReconcileReport summarizes one sweep over open purchase intents
type ReconcileReport struct {
	Scanned     int `json:"scanned"`
	Recorded    int `json:"recorded"`
	Compensated int `json:"compensated"`
	Abandoned   int `json:"abandoned"`
	Skipped     int `json:"skipped"` // Settled by a concurrent sweep or purchase
	Failed      int `json:"failed"`
}

// PurchaseUseCase turns a purchase request into a debited wallet and a pending order
type PurchaseUseCase interface {
	// Purchase runs the debit, record, notify sequence, crediting the debit
	// back if the order cannot be recorded
	Purchase(ctx context.Context, req PurchaseRequest) (*entity.Order, error)
}

// ReconcileUseCase finishes or refunds purchases interrupted between debit and record
type ReconcileUseCase interface {
	// Reconcile processes every stale open intent once
	Reconcile(ctx context.Context) (*ReconcileReport, error)
}
