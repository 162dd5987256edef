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

// IntentRepository implements IntentRepository on bolt
type IntentRepository struct {
	store *Store
}

// NewIntentRepository creates a new IntentRepository instance
func NewIntentRepository(store *Store) *IntentRepository {
	return &IntentRepository{store: store}
}

// Create saves a new intent and claims its request key
func (r *IntentRepository) Create(ctx context.Context, intent *entity.PurchaseIntent) error {
	return r.store.update(ctx, "create purchase intent", func(tx *bolt.Tx) error {
		intents := tx.Bucket(bucketIntents)
		if intents.Get([]byte(intent.ID)) != nil {
			return fmt.Errorf("%w: intent %s already exists", errs.ErrConstraintViolation, intent.ID)
		}

		if intent.RequestID != "" {
			requests := tx.Bucket(bucketIntentRequests)
			if requests.Get([]byte(intent.RequestID)) != nil {
				return fmt.Errorf("%w: %s", errs.ErrDuplicatePurchase, intent.RequestID)
			}
			if err := requests.Put([]byte(intent.RequestID), []byte(intent.ID)); err != nil {
				return err
			}
		}
		return putJSON(intents, intent.ID, intent)
	})
}

// UpdateState overwrites an intent only if the stored state is still from
func (r *IntentRepository) UpdateState(ctx context.Context, intent *entity.PurchaseIntent, from entity.IntentState) error {
	return r.store.update(ctx, "update purchase intent", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketIntents)

		var stored entity.PurchaseIntent
		found, err := getJSON(b, intent.ID, &stored)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrIntentNotFound, intent.ID)
		}
		if stored.State != from {
			return fmt.Errorf("%w: intent %s is %s", errs.ErrInvalidStatusTransition, intent.ID, stored.State)
		}

		stored.OrderID = intent.OrderID
		stored.State = intent.State
		stored.LastError = intent.LastError
		stored.UpdatedAt = intent.UpdatedAt
		return putJSON(b, intent.ID, &stored)
	})
}

// GetByRequestID resolves a request key to its intent
func (r *IntentRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.PurchaseIntent, error) {
	var intent entity.PurchaseIntent
	err := r.store.view(ctx, "get purchase intent", func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketIntentRequests).Get([]byte(requestID))
		if id == nil {
			return fmt.Errorf("%w: request %s", errs.ErrIntentNotFound, requestID)
		}
		found, err := getJSON(tx.Bucket(bucketIntents), string(id), &intent)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrIntentNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// ListOpen returns started or debited intents last updated before the cutoff, oldest first
func (r *IntentRepository) ListOpen(ctx context.Context, updatedBefore time.Time) ([]*entity.PurchaseIntent, error) {
	intents := []*entity.PurchaseIntent{}
	err := r.store.view(ctx, "list open purchase intents", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketIntents), func(i *entity.PurchaseIntent) error {
			if !i.IsTerminal() && i.UpdatedAt.Before(updatedBefore) {
				intents = append(intents, i)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(intents, func(a, b *entity.PurchaseIntent) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return intents, nil
}
