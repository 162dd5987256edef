package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f *fakeStats) Stats() sql.DBStats { return f.stats }
func (f *fakeStats) PingContext(_ context.Context) error { return nil }

func TestConnectionPoolMonitor(t *testing.T) {
	source := &fakeStats{stats: sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 3, Idle: 1}}
	monitor := NewConnectionPoolMonitor(source, logger.NewNoopLogger())

	assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	assert.Error(t, monitor.Start(0))

	assert.NoError(t, monitor.Start(time.Hour))
	defer monitor.Stop()

	metrics := monitor.GetMetrics()
	assert.Equal(t, 10, metrics.MaxOpenConnections)
	assert.Equal(t, 3, metrics.InUse)
	assert.Equal(t, 1, metrics.IdleConnections)

	monitor.Stop()
	monitor.Stop()
}
