package boltstore

import (
	"context"
	"fmt"
	"slices"

	bolt "github.com/boltdb/bolt"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// TopUpRepository implements TopUpRepository on bolt
type TopUpRepository struct {
	store *Store
}

// NewTopUpRepository creates a new TopUpRepository instance
func NewTopUpRepository(store *Store) *TopUpRepository {
	return &TopUpRepository{store: store}
}

// Create saves a new request
func (r *TopUpRepository) Create(ctx context.Context, request *entity.TopUpRequest) error {
	return r.store.update(ctx, "create top-up", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTopUps)
		if b.Get([]byte(request.ID)) != nil {
			return fmt.Errorf("%w: top-up %s already exists", errs.ErrConstraintViolation, request.ID)
		}
		return putJSON(b, request.ID, request)
	})
}

// GetByID retrieves a request
func (r *TopUpRepository) GetByID(ctx context.Context, id string) (*entity.TopUpRequest, error) {
	var request entity.TopUpRequest
	err := r.store.view(ctx, "get top-up", func(tx *bolt.Tx) error {
		found, err := getJSON(tx.Bucket(bucketTopUps), id, &request)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrTopUpNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateReview writes the review fields only if the stored status is still from
func (r *TopUpRepository) UpdateReview(ctx context.Context, request *entity.TopUpRequest, from entity.TopUpStatus) error {
	return r.store.update(ctx, "update top-up review", func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTopUps)

		var stored entity.TopUpRequest
		found, err := getJSON(b, request.ID, &stored)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errs.ErrTopUpNotFound, request.ID)
		}
		if stored.Status != from {
			return fmt.Errorf("%w: top-up %s is %s", errs.ErrInvalidStatusTransition, request.ID, stored.Status)
		}

		stored.Status = request.Status
		stored.ReviewedAt = request.ReviewedAt
		stored.ReviewedBy = request.ReviewedBy
		stored.BonusCoins = request.BonusCoins
		return putJSON(b, request.ID, &stored)
	})
}

// ListByStatus returns requests with the status, oldest first
func (r *TopUpRepository) ListByStatus(ctx context.Context, status entity.TopUpStatus) ([]*entity.TopUpRequest, error) {
	requests, err := r.list(ctx, func(req *entity.TopUpRequest) bool { return status == "" || req.Status == status })
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(requests, func(a, b *entity.TopUpRequest) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return requests, nil
}

// ListByAccount returns the requests of one account, newest first
func (r *TopUpRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.TopUpRequest, error) {
	requests, err := r.list(ctx, func(req *entity.TopUpRequest) bool { return req.AccountID == accountID })
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(requests, func(a, b *entity.TopUpRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return requests, nil
}

func (r *TopUpRepository) list(ctx context.Context, keep func(*entity.TopUpRequest) bool) ([]*entity.TopUpRequest, error) {
	requests := []*entity.TopUpRequest{}
	err := r.store.view(ctx, "list top-ups", func(tx *bolt.Tx) error {
		return forEachJSON(tx.Bucket(bucketTopUps), func(req *entity.TopUpRequest) error {
			if keep(req) {
				requests = append(requests, req)
			}
			return nil
		})
	})
	return requests, err
}
