package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/aalemi-dev/remotecall-server/config"
	"github.com/aalemi-dev/remotecall-server/gateway"
	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/metrics"
	"github.com/aalemi-dev/remotecall-server/relay"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

const banner = `*************************************************************
**       Running remote call server                        **
*************************************************************`

const stoppedMessage = "remote call server stopped. sleeping a while, so telemetry can be flushed ..."

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	_, _ = fmt.Fprintln(stdout, banner)

	cfg, err := config.FromEnvironment()
	if err != nil {
		return errors.WithStack(err)
	}
	if err := cfg.ApplyArgs(args, stderr); err != nil {
		return errors.WithStack(err)
	}

	var gw *gateway.Gateway
	app := newApp(cfg, fx.Populate(&gw))
	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.WithStack(stopErr)
		}
	}()

	gw.LogTracerState()
	if err := gw.Run(ctx); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(stdout, stoppedMessage)
	if err := gw.WaitForFlush(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}
	return nil
}

func newApp(cfg config.Config, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg.Gateway, cfg.Relay, cfg.Logger, cfg.Tracer, cfg.Metrics),
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		relay.FXModule,
		gateway.FXModule,
		fx.WithLogger(logger.FXEventLogger),
		fx.Options(opts...),
	)
}
