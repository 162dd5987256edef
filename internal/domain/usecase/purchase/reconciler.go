package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
)

// Reconciler finishes or refunds purchases that stopped between the debit and the order write
type Reconciler struct {
	uow          persistence.UnitOfWork
	staleAfter   time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReconciler creates a new Reconciler. Intents younger than staleAfter
// belong to purchases that may still be running and are left alone.
func NewReconciler(
	uow persistence.UnitOfWork,
	staleAfter time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		uow:          uow,
		staleAfter:   staleAfter,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "reconciler"}),
	}
}

// Reconcile processes every stale open intent once
func (r *Reconciler) Reconcile(ctx context.Context) (*usecase.ReconcileReport, error) {
	cutoff := r.timeProvider.Now().Add(-r.staleAfter)
	intents, err := r.uow.GetIntentRepository(ctx).ListOpen(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open purchase intents: %w", err)
	}

	report := &usecase.ReconcileReport{Scanned: len(intents)}
	for _, intent := range intents {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		state, err := r.resolve(ctx, intent)
		if errors.Is(err, errs.ErrInvalidStatusTransition) {
			report.Skipped++
			r.logger.Info("Purchase intent settled elsewhere, skipping", map[string]any{
				"intent_id": intent.ID,
				"order_id":  intent.OrderID,
				"error":     err,
			})
			continue
		}
		if err != nil {
			report.Failed++
			r.logger.Error("Failed to reconcile purchase intent", map[string]any{
				"intent_id":  intent.ID,
				"order_id":   intent.OrderID,
				"account_id": intent.AccountID,
				"amount":     intent.Amount,
				"state":      string(intent.State),
				"error":      err,
			})
			continue
		}

		switch state {
		case entity.IntentRecorded:
			report.Recorded++
		case entity.IntentCompensated:
			report.Compensated++
		case entity.IntentAbandoned:
			report.Abandoned++
		case entity.IntentCompensationFailed:
			report.Failed++
		}
	}

	if report.Scanned > 0 {
		r.logger.Info("Reconciliation sweep finished", map[string]any{
			"scanned":     report.Scanned,
			"recorded":    report.Recorded,
			"compensated": report.Compensated,
			"abandoned":   report.Abandoned,
			"skipped":     report.Skipped,
			"failed":      report.Failed,
		})
	}
	return report, nil
}

// resolve decides the final state of one intent and persists it
func (r *Reconciler) resolve(ctx context.Context, intent *entity.PurchaseIntent) (entity.IntentState, error) {
	if intent.IsTerminal() {
		return intent.State, nil
	}

	recorded, err := r.orderRecorded(ctx, intent)
	if err != nil {
		return "", err
	}

	switch {
	case recorded:
		return r.settle(ctx, intent, entity.IntentRecorded, nil)
	case intent.State == entity.IntentStarted:
		return r.settle(ctx, intent, entity.IntentAbandoned, nil)
	}

	if err := refund(ctx, r.uow, intent, nil, r.timeProvider); err != nil {
		if errors.Is(err, errs.ErrInvalidStatusTransition) {
			return "", err
		}
		r.logger.Error("CRITICAL: refund of interrupted purchase failed", map[string]any{
			"intent_id":  intent.ID,
			"order_id":   intent.OrderID,
			"account_id": intent.AccountID,
			"amount":     intent.Amount,
			"error":      err,
		})
		return r.settle(ctx, intent, entity.IntentCompensationFailed, err)
	}
	return entity.IntentCompensated, nil
}

// settle moves the intent to a final state outside any transaction, unless
// another sweep or the purchase itself moved it first
func (r *Reconciler) settle(ctx context.Context, intent *entity.PurchaseIntent, to entity.IntentState, cause error) (entity.IntentState, error) {
	next := *intent
	if err := next.Transition(to, cause, r.timeProvider); err != nil {
		return "", err
	}
	if err := r.uow.GetIntentRepository(ctx).UpdateState(ctx, &next, intent.State); err != nil {
		return "", err
	}
	*intent = next
	return to, nil
}

// orderRecorded reports whether the order the intent points at was written by this purchase
func (r *Reconciler) orderRecorded(ctx context.Context, intent *entity.PurchaseIntent) (bool, error) {
	order, err := r.uow.GetOrderRepository(ctx).GetByID(ctx, intent.OrderID)
	if errors.Is(err, errs.ErrOrderNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return order.AccountID == intent.AccountID && order.Price == intent.Amount, nil
}

// Run sweeps on every tick until ctx is cancelled
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("Reconciler started", map[string]any{
		"interval":    interval.String(),
		"stale_after": r.staleAfter.String(),
	})

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciler stopped", nil)
			return
		case <-ticker.C:
			if _, err := r.Reconcile(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("Reconciliation sweep failed", map[string]any{"error": err})
			}
		}
	}
}
