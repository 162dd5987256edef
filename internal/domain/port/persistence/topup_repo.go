package persistence

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// TopUpRepository defines methods to interact with top-up requests
type TopUpRepository interface {
	// Create saves a new request
	Create(ctx context.Context, request *entity.TopUpRequest) error

	// GetByID retrieves a request
	//
	// Possible errors:
	// - ErrTopUpNotFound: If request doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.TopUpRequest, error)

	// UpdateReview writes the review fields of request only if the stored
	// status still equals from
	//
	// Possible errors:
	// - ErrTopUpNotFound: If request doesn't exist
	// - ErrInvalidStatusTransition: If the stored status is not from
	// - ErrDatabaseConnection: If database connection fails
	UpdateReview(ctx context.Context, request *entity.TopUpRequest, from entity.TopUpStatus) error

	// ListByStatus returns requests with the status, or all when status is empty, oldest first
	ListByStatus(ctx context.Context, status entity.TopUpStatus) ([]*entity.TopUpRequest, error)

	// ListByAccount returns the requests of one account, newest first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.TopUpRequest, error)
}
