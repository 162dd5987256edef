package persistence

import (
	"context"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// IntentRepository stores purchase intents, the outbox of the purchase sequence
type IntentRepository interface {
	// Create saves a new intent
	//
	// Possible errors:
	// - ErrDuplicatePurchase: If another intent already uses the request ID
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, intent *entity.PurchaseIntent) error

	// UpdateState writes the state, order ID and error of an intent only while
	// the stored state is still from. Two writers holding the same snapshot
	// cannot both move the intent on.
	//
	// Possible errors:
	// - ErrIntentNotFound: If intent doesn't exist
	// - ErrInvalidStatusTransition: If the stored state is no longer from
	// - ErrDatabaseConnection: If database connection fails
	UpdateState(ctx context.Context, intent *entity.PurchaseIntent, from entity.IntentState) error

	// GetByRequestID retrieves the intent created for a client request key
	//
	// Possible errors:
	// - ErrIntentNotFound: If no intent uses the key
	// - ErrDatabaseConnection: If database connection fails
	GetByRequestID(ctx context.Context, requestID string) (*entity.PurchaseIntent, error)

	// ListOpen returns started or debited intents last updated before the cutoff, oldest first
	ListOpen(ctx context.Context, updatedBefore time.Time) ([]*entity.PurchaseIntent, error)
}
