package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/remotecall-server/listener"
	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/observability"
	"github.com/aalemi-dev/remotecall-server/relay"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

func TestFXModule_ProvidesGateway(t *testing.T) {
	t.Parallel()
	clock := clockz.NewFakeClock()
	var gw *Gateway

	app := fxtest.New(t,
		logger.FXModule,
		tracer.FXModule,
		relay.FXModule,
		FXModule,
		fx.Supply(
			logger.Config{Level: logger.Info, ServiceName: "gateway-fx"},
			tracer.Config{ServiceName: "gateway-fx", Disabled: true},
			relay.Config{},
			Config{
				Listener:   listener.Config{Host: "127.0.0.1", Port: 0},
				FlushDelay: time.Minute,
			},
		),
		fx.Provide(func() clockz.Clock { return clock }),
		fx.Populate(&gw),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, gw)
	assert.Equal(t, time.Minute, gw.cfg.FlushDelay)
	assert.Equal(t, clockz.Clock(clock), gw.clock)
	assert.IsType(t, &observability.NoOpObserver{}, gw.observer)
	assert.Equal(t, tracer.StateTemporaryInactive, gw.tracer.State())

	ln, err := gw.Listen(context.Background())
	require.NoError(t, err)
	assert.NoError(t, ln.Close())
}
