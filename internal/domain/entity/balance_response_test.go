package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountToBalanceResponse(t *testing.T) {
	now := time.Now()

	t.Run("Converts account to balance response", func(t *testing.T) {
		account := RestoreAccount("uid-42", "player42", "", 7600, 120, 2, now, now)

		response := AccountToBalanceResponse(account)

		assert.Equal(t, "uid-42", response.AccountID)
		assert.Equal(t, "player42", response.DisplayName)
		assert.Equal(t, int64(7600), response.Balance)
		assert.Equal(t, "7,600 Ks", response.FormattedBalance)
		assert.Equal(t, int64(120), response.Coins)
	})

	t.Run("Handles zero balance", func(t *testing.T) {
		account := RestoreAccount("uid-0", "player0", "", 0, 0, 0, now, now)

		response := AccountToBalanceResponse(account)

		assert.Equal(t, int64(0), response.Balance)
		assert.Equal(t, "0 Ks", response.FormattedBalance)
	})
}
