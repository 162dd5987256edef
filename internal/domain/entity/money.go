package entity

import (
	"math"
	"strconv"
	"strings"

	errs "github.com/atgamehub/storefront/internal/domain/error"
)

// Amounts are whole kyats held in int64; the currency has no minor unit in practice.

// CurrencySuffix is appended to formatted amounts
const CurrencySuffix = "Ks"

// FormatAmount renders an amount with thousands separators, e.g. 2400 -> "2,400 Ks"
func FormatAmount(amount int64) string {
	return FormatNumber(amount) + " " + CurrencySuffix
}

// FormatNumber renders an integer with comma thousands separators
func FormatNumber(n int64) string {
	negative := n < 0
	var digits string
	if negative {
		// math.MinInt64 cannot be negated
		digits = strings.TrimPrefix(strconv.FormatInt(n, 10), "-")
	} else {
		digits = strconv.FormatInt(n, 10)
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// MultiplyPrice returns unitPrice*quantity, failing instead of wrapping around
func MultiplyPrice(unitPrice int64, quantity int) (int64, error) {
	if unitPrice < 0 || quantity < 0 {
		return 0, errs.ErrInvalidAmount
	}
	if quantity == 0 || unitPrice == 0 {
		return 0, nil
	}
	if unitPrice > math.MaxInt64/int64(quantity) {
		return 0, errs.ErrAmountOverflow
	}
	return unitPrice * int64(quantity), nil
}

// AddAmounts returns a+b for non-negative operands, failing on overflow
func AddAmounts(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, errs.ErrInvalidAmount
	}
	if a > math.MaxInt64-b {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}
