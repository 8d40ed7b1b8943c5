package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/remotecall-server/logger"
)

// FXModule provides *TracerClient and the Tracer interface from a
// tracer.Config in the container, routes tracer diagnostics to the logger and
// shuts the client down on stop, which flushes the batch exporter.
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Supply(loggerCfg, tracerCfg),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterLoggingCallback, RegisterTracerLifecycle),
)

// RegisterLoggingCallback makes log the receiver of the client's diagnostics.
func RegisterLoggingCallback(client *TracerClient, log *logger.LoggerClient) {
	client.SetLoggingCallback(loggerCallback{log: log})
}

type loggerCallback struct {
	log logger.Logger
}

func (c loggerCallback) Warn(message string) {
	c.log.Warn(message, nil, map[string]interface{}{"component": "tracer"})
}

func (c loggerCallback) Error(message string) {
	c.log.Error(message, nil, map[string]interface{}{"component": "tracer"})
}

// RegisterTracerLifecycle shuts the tracer down when the application stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, client *TracerClient, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, map[string]interface{}{
				"state": client.State().String(),
			})
			return client.Shutdown(ctx)
		},
	})
}
