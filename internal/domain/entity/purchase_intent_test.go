package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	coremocks "github.com/atgamehub/storefront/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseIntentTransitions(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Happy path", func(t *testing.T) {
		intent := NewPurchaseIntent("i-1", "key-1", "uid-1", "AB12CD34", 2400, mockTime)
		assert.Equal(t, IntentStarted, intent.State)
		assert.False(t, intent.IsTerminal())

		require.NoError(t, intent.Transition(IntentDebited, nil, mockTime))
		require.NoError(t, intent.Transition(IntentRecorded, nil, mockTime))
		assert.True(t, intent.IsTerminal())
		assert.Empty(t, intent.LastError)
	})

	t.Run("Compensation failure keeps the cause", func(t *testing.T) {
		intent := NewPurchaseIntent("i-2", "", "uid-1", "AB12CD35", 2400, mockTime)
		require.NoError(t, intent.Transition(IntentDebited, nil, mockTime))
		require.NoError(t, intent.Transition(IntentCompensationFailed, errors.New("credit failed"), mockTime))

		assert.Equal(t, "credit failed", intent.LastError)
		assert.True(t, intent.IsTerminal())
	})

	t.Run("Illegal transitions", func(t *testing.T) {
		testCases := []struct {
			from IntentState
			to   IntentState
		}{
			{IntentStarted, IntentCompensated},
			{IntentDebited, IntentAbandoned},
			{IntentRecorded, IntentCompensated},
			{IntentCompensationFailed, IntentCompensated},
			{IntentAbandoned, IntentDebited},
		}

		for _, tc := range testCases {
			t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
				intent := &PurchaseIntent{ID: "i-3", State: tc.from}
				err := intent.Transition(tc.to, nil, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
				assert.Equal(t, tc.from, intent.State)
			})
		}
	})
}
