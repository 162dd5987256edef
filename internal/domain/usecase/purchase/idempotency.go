package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
)

// IdempotencyHandler resolves repeated purchase requests carrying the same client key
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{uow: uow}
}

// CheckRequest looks up an earlier purchase made with requestID.
// It returns the recorded order for a finished purchase, nil when the key is
// unused, and ErrDuplicatePurchase when the earlier purchase is still in
// flight or did not produce an order.
func (h *IdempotencyHandler) CheckRequest(ctx context.Context, accountID, requestID string) (*entity.Order, error) {
	intent, err := h.uow.GetIntentRepository(ctx).GetByRequestID(ctx, requestID)
	if errors.Is(err, errs.ErrIntentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up purchase request: %w", err)
	}

	if intent.AccountID != accountID || intent.State != entity.IntentRecorded {
		return nil, fmt.Errorf("%w: request %s is %s", errs.ErrDuplicatePurchase, requestID, intent.State)
	}

	order, err := h.uow.GetOrderRepository(ctx).GetByID(ctx, intent.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order of request %s: %w", requestID, err)
	}
	return order, nil
}
