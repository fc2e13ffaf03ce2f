package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
)

type fixedStats struct {
	stats sql.DBStats
}

func (f fixedStats) Stats() sql.DBStats {
	return f.stats
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("caches the sampled stats", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(fixedStats{sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 2, Idle: 2}}, logger.NewNoopLogger())

		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())

		monitor.Start(time.Hour)
		defer monitor.Stop()

		metrics := monitor.GetMetrics()
		assert.Equal(t, 10, metrics.MaxOpenConnections)
		assert.Equal(t, 2, metrics.InUse)
		assert.Equal(t, 2, metrics.IdleConnections)
	})

	t.Run("warns near exhaustion", func(t *testing.T) {
		atomic := zap.NewAtomicLevelAt(zap.DebugLevel)
		zapCore, logs := observer.New(atomic)
		monitor := NewConnectionPoolMonitor(fixedStats{sql.DBStats{MaxOpenConnections: 10, InUse: 9}}, logger.NewZapLoggerWithCore(zapCore, atomic))

		monitor.collectMetrics()

		assert.Equal(t, 1, logs.FilterMessage("Database connection pool nearly exhausted").Len())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(fixedStats{}, logger.NewNoopLogger())
		monitor.Start(time.Hour)

		monitor.Stop()
		assert.NotPanics(t, monitor.Stop)
	})
}
