package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

func newObservedLogger(level core.LogLevel) (core.Logger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	zapCore, logs := observer.New(atomic)
	return NewZapLoggerWithCore(zapCore, atomic), logs
}

func TestZapLogger_Levels(t *testing.T) {
	logger, logs := newObservedLogger(core.LogLevelInfo)

	logger.Debug("hidden", nil)
	logger.Info("shown", map[string]any{"account_id": "user-1"})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, "user-1", logs.All()[0].ContextMap()["account_id"])

	logger.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, logger.GetLevel())
	logger.Debug("now shown", nil)
	assert.Equal(t, 2, logs.Len())

	logger.SetLevel(core.LogLevelError)
	logger.Warn("dropped", nil)
	logger.Error("kept", nil)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "kept", logs.All()[2].Message)
}

func TestZapLogger_With(t *testing.T) {
	logger, logs := newObservedLogger(core.LogLevelInfo)

	child := logger.With(map[string]any{"request_id": "req-1"})
	child.Info("handled", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.EqualValues(t, 200, fields["status"])

	// children share the parent's level
	logger.SetLevel(core.LogLevelWarn)
	child.Info("filtered", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.SetLevel(core.LogLevelWarn)

	assert.Equal(t, core.LogLevelWarn, logger.GetLevel())
	assert.Same(t, logger, logger.With(map[string]any{"a": 1}))
	assert.NoError(t, logger.Flush())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("verbose"))
}
