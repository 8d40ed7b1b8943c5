package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNewClient_NoExport(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Config{ServiceName: "test-service", AppEnv: "test"})

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.provider)
	assert.Equal(t, StateActive, client.State())
	require.NoError(t, client.Shutdown(context.Background()))
}

func TestNewClient_EnableExport_NoCollector(t *testing.T) {
	t.Parallel()
	// The OTLP HTTP exporter connects lazily, so construction succeeds
	// without a collector.
	client, err := NewClient(Config{
		ServiceName:  "test-service",
		AppEnv:       "test",
		EnableExport: true,
		Endpoint:     "http://127.0.0.1:4318/v1/traces",
	})

	require.NoError(t, err)
	assert.Equal(t, StateActive, client.State())
}

func TestNewClient_EnableExport_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := newClientWithContext(ctx, Config{ServiceName: "test-service", EnableExport: true})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to initialize OTLP exporter")
}

func TestState(t *testing.T) {
	t.Parallel()

	disabled, err := NewClient(Config{Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, StateTemporaryInactive, disabled.State())
	assert.NoError(t, disabled.Shutdown(context.Background()))

	noProvider := NewClientWithProvider(Config{}, nil)
	assert.Equal(t, StatePermanentInactive, noProvider.State())

	active := NewClientWithProvider(Config{}, sdktrace.NewTracerProvider())
	assert.Equal(t, StateActive, active.State())
	require.NoError(t, active.Shutdown(context.Background()))
	assert.Equal(t, StatePermanentInactive, active.State())
	assert.NoError(t, active.Shutdown(context.Background()), "second shutdown is a no-op")
}

func TestState_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ACTIVE", StateActive.String())
	assert.Equal(t, "PERMANENT_INACTIVE", StatePermanentInactive.String())
	assert.Equal(t, "TEMPORARY_INACTIVE", StateTemporaryInactive.String())
	assert.Equal(t, "UNKNOWN", StateUnknown.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
