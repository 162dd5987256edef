package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// TopUpUseCase defines the submit and review workflow for wallet funding
type TopUpUseCase interface {
	// Submit records a pending request backed by payment evidence
	Submit(ctx context.Context, accountID string, amount int64, evidenceURL string) (*entity.TopUpRequest, error)

	// Approve credits the wallet and marks the request approved in one atomic write
	Approve(ctx context.Context, requestID, reviewer string) (*entity.TopUpRequest, error)

	// Reject marks the request rejected without moving funds
	Reject(ctx context.Context, requestID, reviewer string) (*entity.TopUpRequest, error)

	// ListByStatus returns requests with the status, or all when status is empty
	ListByStatus(ctx context.Context, status entity.TopUpStatus) ([]*entity.TopUpRequest, error)

	// ListByAccount returns the requests of one account
	ListByAccount(ctx context.Context, accountID string) ([]*entity.TopUpRequest, error)
}
