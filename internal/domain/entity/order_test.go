package entity

import (
	"testing"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coremocks "github.com/atgamehub/storefront/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account := RestoreAccount("uid-1", "player1", "", 10000, 0, 0, fixedTime, fixedTime)

	t.Run("Single unit", func(t *testing.T) {
		item := Item{ID: "mlbb-86", LineID: "mlbb", Name: "86 Diamonds", Price: 2400}
		order := NewOrder("AB12CD34", account, item, 1, 2400, " 12345 ", "2001", mockTime)

		assert.Equal(t, "AB12CD34", order.ID)
		assert.Equal(t, "uid-1", order.AccountID)
		assert.Equal(t, "player1", order.Username)
		assert.Equal(t, "86 Diamonds", order.ItemName)
		assert.Equal(t, int64(2400), order.Price)
		assert.Equal(t, "12345", order.PlayerID)
		assert.Equal(t, OrderPending, order.Status)
		assert.Equal(t, fixedTime, order.CreatedAt)
		assert.Nil(t, order.CompletedAt)
	})

	t.Run("Multiple units get a suffix", func(t *testing.T) {
		item := Item{ID: "mlbb-wp", LineID: "mlbb", Name: "Weekly Pass", Price: 6500, Multiple: true}
		order := NewOrder("AB12CD35", account, item, 3, 19500, "12345", "2001", mockTime)

		assert.Equal(t, "Weekly Pass x3", order.ItemName)
		assert.Equal(t, int64(6500), order.UnitPrice)
		assert.Equal(t, int64(19500), order.Price)
	})
}

func TestOrderMarkCompleted(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(completedAt).Once()

	order := &Order{ID: "AB12CD34", Status: OrderPending, CreatedAt: createdAt}

	require.NoError(t, order.MarkCompleted(mockTime))
	assert.Equal(t, OrderCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, completedAt, *order.CompletedAt)

	err := order.MarkCompleted(mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
}

func TestCanTransitionOrder(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderPending, OrderCompleted))
	assert.True(t, CanTransitionOrder(OrderPending, OrderFailed))
	assert.False(t, CanTransitionOrder(OrderCompleted, OrderPending))
	assert.False(t, CanTransitionOrder(OrderFailed, OrderCompleted))
}

func TestOrderSummary(t *testing.T) {
	order := &Order{
		ID:        "AB12CD34",
		Username:  "player1",
		ItemName:  "86 Diamonds",
		Price:     2400,
		PlayerID:  "12345",
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	summary := order.Summary()
	assert.Contains(t, summary, "AB12CD34")
	assert.Contains(t, summary, "2,400 Ks")
	assert.Contains(t, summary, "Player ID: 12345")
	assert.NotContains(t, summary, "Server ID")
	assert.Contains(t, summary, "2024-03-01T09:00:00Z")
}
