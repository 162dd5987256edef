package entity

import (
	"math"
	"testing"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "0 Ks"},
		{999, "999 Ks"},
		{2400, "2,400 Ks"},
		{10000, "10,000 Ks"},
		{1234567, "1,234,567 Ks"},
		{-7600, "-7,600 Ks"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.input))
		})
	}

	t.Run("Min int64", func(t *testing.T) {
		assert.Equal(t, "-9,223,372,036,854,775,808", FormatNumber(math.MinInt64))
	})
}

func TestMultiplyPrice(t *testing.T) {
	t.Run("Valid products", func(t *testing.T) {
		total, err := MultiplyPrice(2400, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(7200), total)

		total, err = MultiplyPrice(2400, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := MultiplyPrice(math.MaxInt64/2+1, 2)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})

	t.Run("Negative operands", func(t *testing.T) {
		_, err := MultiplyPrice(-1, 2)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAddAmounts(t *testing.T) {
	sum, err := AddAmounts(7600, 2400)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), sum)

	_, err = AddAmounts(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = AddAmounts(-1, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}
