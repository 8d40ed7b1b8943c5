package gateway

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/zoobzio/clockz"
	"go.uber.org/fx"

	"github.com/aalemi-dev/remotecall-server/listener"
	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/observability"
	"github.com/aalemi-dev/remotecall-server/relay"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

// Gateway serves one remote call and exits.
type Gateway struct {
	cfg      Config
	relay    *relay.Relay
	tracer   tracer.Tracer
	log      logger.Logger
	observer observability.Observer
	clock    clockz.Clock
}

// Params groups the dependencies of New. Observer and Clock are optional;
// they default to a no-op observer and the wall clock.
type Params struct {
	fx.In

	Config   Config
	Relay    *relay.Relay
	Tracer   tracer.Tracer
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
	Clock    clockz.Clock           `optional:"true"`
}

// New creates a Gateway.
func New(p Params) *Gateway {
	clock := p.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	observer := p.Observer
	if observer == nil {
		observer = observability.NewNoOpObserver()
	}
	return &Gateway{
		cfg:      p.Config,
		relay:    p.Relay,
		tracer:   p.Tracer,
		log:      p.Logger,
		observer: observer,
		clock:    clock,
	}
}

// LogTracerState reports once whether calls will actually be captured.
func (g *Gateway) LogTracerState() {
	state := g.tracer.State()
	fields := map[string]interface{}{"state": state.String()}

	switch state {
	case tracer.StateActive:
		g.log.Info("tracing is active and capturing", nil, fields)
	case tracer.StatePermanentInactive:
		fields["hint"] = "no trace provider is installed or it has been shut down; check the exporter configuration"
		g.log.Warn("tracing is permanently inactive", nil, fields)
	case tracer.StateTemporaryInactive:
		fields["hint"] = "tracing is disabled by configuration; unset TRACER_DISABLED to enable it"
		g.log.Warn("tracing is temporarily inactive", nil, fields)
	default:
		g.log.Warn("tracing state is unknown", nil, fields)
	}
}

// Listen binds the configured socket.
func (g *Gateway) Listen(ctx context.Context) (*listener.Listener, error) {
	ln, err := listener.Listen(ctx, g.cfg.Listener, listener.WithObserver(g.observer))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	g.log.Info("waiting for clients", nil, map[string]interface{}{
		"address": ln.Addr().String(),
	})
	return ln, nil
}

// Serve accepts exactly one connection on ln and relays its tag. ln is closed
// when Serve returns.
//
// A payload the relay cannot decode is logged and Serve returns nil; any
// other failure is returned with a stack trace.
func (g *Gateway) Serve(ctx context.Context, ln *listener.Listener) (err error) {
	defer func() { _ = ln.Close() }()

	start := time.Now()
	address := ln.Addr().String()
	defer func() {
		g.observeOperation("serve", address, time.Since(start), err)
	}()

	conn, err := ln.Accept(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	remote := conn.RemoteAddr().String()
	g.log.Info("client connected", nil, map[string]interface{}{
		"remote_addr": remote,
	})

	err = g.relay.Handle(ctx, conn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, relay.ErrDecode):
		g.log.Error("failed to read tag from client", err, map[string]interface{}{
			"remote_addr": remote,
		})
		return nil
	default:
		return errors.WithStack(err)
	}
}

// Run is Listen followed by Serve.
func (g *Gateway) Run(ctx context.Context) error {
	ln, err := g.Listen(ctx)
	if err != nil {
		return err
	}
	return g.Serve(ctx, ln)
}

// WaitForFlush blocks for the configured flush delay, or until ctx is done.
func (g *Gateway) WaitForFlush(ctx context.Context) error {
	if g.cfg.FlushDelay <= 0 {
		return nil
	}

	g.log.Info("waiting for telemetry to be flushed", nil, map[string]interface{}{
		"delay": g.cfg.FlushDelay.String(),
	})

	start := g.clock.Now()
	select {
	case <-g.clock.After(g.cfg.FlushDelay):
		g.observeOperation("flush", "", g.clock.Since(start), nil)
		return nil
	case <-ctx.Done():
		err := ctx.Err()
		g.observeOperation("flush", "", g.clock.Since(start), err)
		return err
	}
}

func (g *Gateway) observeOperation(operation, resource string, duration time.Duration, err error) {
	g.observer.ObserveOperation(observability.OperationContext{
		Component: "gateway",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
	})
}
