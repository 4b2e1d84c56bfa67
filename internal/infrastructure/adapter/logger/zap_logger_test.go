package logger

import (
	"testing"

	"github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level core.LogLevel) (*ZapLogger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	obsCore, logs := observer.New(atomic)
	return newFromZap(zap.New(obsCore), atomic), logs
}

func TestZapLogger_Levels(t *testing.T) {
	l, logs := newObserved(core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"kind": "transaction"})
	l.Error("failed", map[string]any{"error": "boom"})

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "shown", entries[0].Message)
	assert.Equal(t, "transaction", entries[0].ContextMap()["kind"])
	assert.Equal(t, "failed", entries[1].Message)
}

func TestZapLogger_SetLevel(t *testing.T) {
	l, logs := newObserved(core.LogLevelInfo)

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())

	l.Warn("dropped", nil)
	assert.Equal(t, 0, logs.Len())

	l.SetLevel(core.LogLevelDebug)
	l.Debug("kept", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestZapLogger_WithSharesLevel(t *testing.T) {
	l, logs := newObserved(core.LogLevelInfo)

	child := l.With(map[string]any{"request_id": "abc"})
	l.SetLevel(core.LogLevelWarn)
	child.Info("dropped", nil)
	child.Warn("kept", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Production: true, Level: core.LogLevelWarn, Service: "finance-records"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("bogus"))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelDebug)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.Same(t, l, l.With(map[string]any{"a": 1}))
	assert.NoError(t, l.Flush())
}
