package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/remotecall-server/logger"
)

func nopLogger() *logger.LoggerClient {
	return &logger.LoggerClient{Zap: zap.NewNop()}
}

func TestFXModule_ProvidesTracer(t *testing.T) {
	t.Parallel()
	var client *TracerClient
	var tr Tracer

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{ServiceName: "fx-test", AppEnv: "test"}),
		fx.Provide(nopLogger),
		fx.Populate(&client, &tr),
	)

	app.RequireStart()
	assert.Equal(t, StateActive, tr.State())
	app.RequireStop()

	assert.Equal(t, StatePermanentInactive, client.State())
}

func TestRegisterTracerLifecycle_NilProvider(t *testing.T) {
	t.Parallel()
	client := NewClientWithProvider(Config{}, nil)

	app := fxtest.New(t,
		fx.Supply(client),
		fx.Provide(nopLogger),
		fx.Invoke(RegisterTracerLifecycle),
	)

	app.RequireStart()
	require.NotPanics(t, func() { app.RequireStop() })
}

func TestRegisterLoggingCallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.LoggerClient{Zap: zap.New(core)}
	client := NewClientWithProvider(Config{}, nil)

	RegisterLoggingCallback(client, log)
	client.reportWarning("tag set after start")
	client.reportError("export failed")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "tag set after start", entries[0].Message)
	assert.Equal(t, "tracer", entries[0].ContextMap()["component"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
