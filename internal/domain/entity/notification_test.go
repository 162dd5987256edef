package entity

import (
	"testing"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coremocks "github.com/atgamehub/storefront/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	n, err := NewNotification("n-1", "uid-1", " Maintenance ", "Back at 10:00", mockTime)
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", n.Title)
	assert.False(t, n.Read)
	assert.Empty(t, n.OrderID)

	_, err = NewNotification("n-2", "uid-1", "", "body", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = NewNotification("n-3", "", "title", "body", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
}

func TestNewOrderCompletedNotification(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	order := &Order{ID: "AB12CD34", AccountID: "uid-1", ItemName: "86 Diamonds", Price: 2400}
	n := NewOrderCompletedNotification("n-1", order, mockTime)

	assert.Equal(t, "uid-1", n.AccountID)
	assert.Equal(t, "AB12CD34", n.OrderID)
	assert.Contains(t, n.Message, "86 Diamonds")
	assert.Contains(t, n.Message, "2,400 Ks")
	assert.Equal(t, fixedTime, n.CreatedAt)
}
