package entity

import (
	"testing"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coremocks "github.com/atgamehub/storefront/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopUpRequest(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account := RestoreAccount("uid-1", "player1", "", 0, 0, 0, fixedTime, fixedTime)

	t.Run("Valid request", func(t *testing.T) {
		req, err := NewTopUpRequest("req-1", account, 10000, "https://cdn.example.com/slip.jpg", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TopUpPending, req.Status)
		assert.Equal(t, "player1", req.Username)
		assert.Equal(t, int64(10000), req.Amount)
		assert.Nil(t, req.ReviewedAt)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, err := NewTopUpRequest("req-1", account, 0, "https://cdn.example.com/slip.jpg", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Invalid evidence", func(t *testing.T) {
		testCases := []string{"", "slip.jpg", "ftp://host/slip.jpg", "https://"}
		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := NewTopUpRequest("req-1", account, 10000, tc, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidEvidence)
			})
		}
	})
}

func TestTopUpTransitions(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Approve once", func(t *testing.T) {
		req := &TopUpRequest{ID: "req-1", Status: TopUpPending}

		require.NoError(t, req.Approve("admin-1", 500, mockTime))
		assert.Equal(t, TopUpApproved, req.Status)
		assert.Equal(t, "admin-1", req.ReviewedBy)
		assert.Equal(t, int64(500), req.BonusCoins)

		assert.ErrorIs(t, req.Approve("admin-1", 500, mockTime), errs.ErrInvalidStatusTransition)
		assert.ErrorIs(t, req.Reject("admin-1", mockTime), errs.ErrInvalidStatusTransition)
	})

	t.Run("Rejected is terminal", func(t *testing.T) {
		req := &TopUpRequest{ID: "req-2", Status: TopUpPending}

		require.NoError(t, req.Reject("admin-1", mockTime))
		assert.Equal(t, TopUpRejected, req.Status)
		assert.ErrorIs(t, req.Approve("admin-1", 0, mockTime), errs.ErrInvalidStatusTransition)
	})
}

func TestBonusCoins(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int64
		percent  string
		expected int64
	}{
		{"Five percent", 10000, "5", 500},
		{"Fractional percent floors", 999, "2.5", 24},
		{"Zero percent", 10000, "0", 0},
		{"Small amount floors to zero", 19, "5", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BonusCoins(tc.amount, decimal.RequireFromString(tc.percent)))
		})
	}
}
