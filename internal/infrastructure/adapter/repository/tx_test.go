package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTxFromContext(t *testing.T) {
	_, ok := TxFromContext(context.Background())
	assert.False(t, ok)

	var nilTx *gorm.DB
	_, ok = TxFromContext(ContextWithTx(context.Background(), nilTx))
	assert.False(t, ok, "a nil tx is not a transaction")

	tx := &gorm.DB{}
	got, ok := TxFromContext(ContextWithTx(context.Background(), tx))
	assert.True(t, ok)
	assert.Same(t, tx, got)
}

func TestConnPrefersContextTx(t *testing.T) {
	tx := &gorm.DB{}
	db := &gorm.DB{}

	assert.Same(t, tx, conn(ContextWithTx(context.Background(), tx), db))
}
