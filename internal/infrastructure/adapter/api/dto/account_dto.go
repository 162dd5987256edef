package dto

import (
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// RegisterRequest represents the API request for creating the caller's account
type RegisterRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Email       string `json:"email"`
}

// AdjustBalanceRequest represents an admin's manual balance correction
type AdjustBalanceRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// AccountResponse represents an account with its wallet
type AccountResponse struct {
	entity.BalanceResponse
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAccountResponse converts an Account entity
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		BalanceResponse: entity.AccountToBalanceResponse(account),
		Email:           account.Email,
		CreatedAt:       account.CreatedAt,
	}
}

// NewAccountResponses converts a list of accounts
func NewAccountResponses(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}
