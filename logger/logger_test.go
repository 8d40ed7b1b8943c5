package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger creates a LoggerClient backed by an in-memory observer
// so tests can assert on emitted log entries without writing to stderr.
func newObservedLogger(level zapcore.Level, tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracingEnabled,
	}, logs
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, parseLevel(tc.level))
		})
	}
}

func TestNewLoggerClient(t *testing.T) {
	t.Parallel()
	l := NewLoggerClient(Config{Level: Debug, ServiceName: "test", EnableTracing: true})

	require.NotNil(t, l)
	require.NotNil(t, l.Zap)
	assert.True(t, l.tracingEnabled)
	assert.True(t, l.Zap.Core().Enabled(zapcore.DebugLevel))
}

func TestConvertToZapFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)

	assert.Empty(t, l.convertToZapFields(nil))

	fields := l.convertToZapFields(errors.New("oops"), map[string]interface{}{"k": "v"}, map[string]interface{}{"n": 1})
	require.Len(t, fields, 3)
	assert.Equal(t, "error", fields[0].Key)
}

func TestLevels(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, false)

	l.Debug("debug msg", nil)
	l.Info("info msg", nil, map[string]interface{}{"port": 33744})
	l.Warn("warn msg", nil)
	l.Error("error msg", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.EqualValues(t, 33744, entries[1].ContextMap()["port"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, false)
	l.Debug("should not appear", nil)
	assert.Zero(t, logs.Len())
}

func TestWithContext_NoSpan(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, true)

	l.DebugWithContext(context.Background(), "d", nil)
	l.InfoWithContext(context.Background(), "i", nil)
	l.WarnWithContext(context.Background(), "w", nil)
	l.ErrorWithContext(context.Background(), "e", errors.New("x"))

	require.Equal(t, 4, logs.Len())
	for _, entry := range logs.All() {
		_, ok := entry.ContextMap()["trace_id"]
		assert.False(t, ok, "did not expect trace_id without an active span")
	}
}

func TestWithContext_ActiveSpan(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, true)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "myMethod")
	defer span.End()

	l.InfoWithContext(ctx, "received tag", nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestExtractTracingFields_TracingDisabled(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	assert.Empty(t, l.extractTracingFields(ctx))
}

func TestExtractTracingFields_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, true)
	//nolint:staticcheck // intentionally passing nil to test guard
	assert.Empty(t, l.extractTracingFields(nil))
}

func TestLoggerClient_ImplementsLogger(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.InfoLevel, false)
	var _ Logger = l
}
