package purchase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OrderCodeLength is the number of characters in an order code
const OrderCodeLength = 8

const orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGenerator produces candidate order codes
type CodeGenerator func() (string, error)

// NewOrderCode returns a random upper-case alphanumeric order code
func NewOrderCode() (string, error) {
	limit := big.NewInt(int64(len(orderCodeAlphabet)))
	code := make([]byte, OrderCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate order code: %w", err)
		}
		code[i] = orderCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
