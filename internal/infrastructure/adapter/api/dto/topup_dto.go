package dto

import (
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// TopUpRequest represents the API request for funding the wallet
type TopUpRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	EvidenceURL string `json:"evidenceUrl" binding:"required"`
}

// TopUpResponse represents a top-up request
type TopUpResponse struct {
	ID          string     `json:"requestId"`
	AccountID   string     `json:"accountId"`
	Username    string     `json:"username"`
	Amount      int64      `json:"amount"`
	EvidenceURL string     `json:"evidenceUrl"`
	Status      string     `json:"status"`
	BonusCoins  int64      `json:"bonusCoins"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
}

// NewTopUpResponse converts a TopUpRequest entity
func NewTopUpResponse(r *entity.TopUpRequest) TopUpResponse {
	return TopUpResponse{
		ID:          r.ID,
		AccountID:   r.AccountID,
		Username:    r.Username,
		Amount:      r.Amount,
		EvidenceURL: r.EvidenceURL,
		Status:      string(r.Status),
		BonusCoins:  r.BonusCoins,
		CreatedAt:   r.CreatedAt,
		ReviewedAt:  r.ReviewedAt,
		ReviewedBy:  r.ReviewedBy,
	}
}

// NewTopUpResponses converts a list of top-up requests
func NewTopUpResponses(requests []*entity.TopUpRequest) []TopUpResponse {
	out := make([]TopUpResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewTopUpResponse(r))
	}
	return out
}
