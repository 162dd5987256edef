package purchase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
)

// refund credits the charge of a debited intent back and marks the intent
// compensated in one transaction. The intent write only succeeds while the
// stored intent is still in the state this caller read, so a second refund
// of the same purchase rolls its credit back with ErrInvalidStatusTransition.
// On failure intent is left unchanged.
func refund(
	ctx context.Context,
	uow persistence.UnitOfWork,
	intent *entity.PurchaseIntent,
	cause error,
	timeProvider coreport.TimeProvider,
) error {
	refunded := *intent
	if err := refunded.Transition(entity.IntentCompensated, cause, timeProvider); err != nil {
		return err
	}

	err := persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
		if _, err := uow.GetAccountRepository(txCtx).AdjustBalance(txCtx, intent.AccountID, intent.Amount); err != nil {
			return err
		}
		return uow.GetIntentRepository(txCtx).UpdateState(txCtx, &refunded, intent.State)
	})
	if err != nil {
		return err
	}

	*intent = refunded
	return nil
}
