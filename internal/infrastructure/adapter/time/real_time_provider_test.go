package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProviderSleep(t *testing.T) {
	p := NewRealTimeProvider()

	start := time.Now()
	assert.NoError(t, p.Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Sleep(ctx, time.Hour), context.Canceled)
}

func TestRealTimeProviderNow(t *testing.T) {
	p := NewRealTimeProvider()
	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), time.Duration(0))
}
