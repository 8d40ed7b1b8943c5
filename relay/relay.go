package relay

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/observability"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

// Handler does the actual work of a received call while its span is active.
// An error (or panic) is recorded on the span; it does not fail Handle.
type Handler func(ctx context.Context, tag Tag) error

// NoOpHandler is the default Handler. The remote call server only traces the
// call; there is no request payload to act on.
func NoOpHandler(context.Context, Tag) error {
	return nil
}

// Relay reads the tag of one connection and reports the call to the tracer.
type Relay struct {
	cfg      Config
	tracer   tracer.Tracer
	log      logger.Logger
	handler  Handler
	observer observability.Observer
}

// Option configures a Relay.
type Option func(*Relay)

// WithHandler replaces NoOpHandler.
func WithHandler(h Handler) Option {
	return func(r *Relay) {
		if h != nil {
			r.handler = h
		}
	}
}

// WithObserver reports the decode and trace operations to observer.
func WithObserver(observer observability.Observer) Option {
	return func(r *Relay) {
		r.observer = observer
	}
}

// New creates a Relay reporting to t.
func New(cfg Config, t tracer.Tracer, log logger.Logger, opts ...Option) *Relay {
	r := &Relay{
		cfg:     cfg.withDefaults(),
		tracer:  t,
		log:     log,
		handler: NoOpHandler,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle serves one connection:
//
//  1. decode one Envelope; on failure return an error wrapping ErrDecode
//  2. classify the value, logging a diagnostic for invalid tags
//  3. trace the call, attaching the tag when it is valid
//  4. run the handler inside the span, recording its failure on the span
//
// The connection is closed before Handle returns, whatever the outcome.
// Cancelling ctx closes the connection, which unblocks a pending read.
func (r *Relay) Handle(ctx context.Context, conn net.Conn) error {
	defer func() { _ = conn.Close() }()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	remote := conn.RemoteAddr().String()

	start := time.Now()
	value, size, err := decodeValue(conn, r.cfg.MaxTagSize)
	r.observeOperation("decode", remote, "", time.Since(start), err, size)
	if err != nil {
		return err
	}

	tag := Classify(value)
	r.log.Info("received tag", nil, map[string]interface{}{
		"remote_addr": remote,
		"tag":         tag.String(),
		"tag_kind":    tag.Kind.String(),
	})
	if !tag.Valid() {
		r.log.Warn("invalid tag received", nil, map[string]interface{}{
			"remote_addr": remote,
			"type":        tag.Type(),
		})
	}

	start = time.Now()
	err = r.trace(ctx, tag)
	r.observeOperation("trace", r.cfg.Method, tag.Kind.String(), time.Since(start), err, int64(tag.Size()))
	return nil
}

// trace runs the handler inside an incoming remote call span and returns the
// handler's error after recording it on the span.
func (r *Relay) trace(ctx context.Context, tag Tag) error {
	call := r.tracer.TraceIncomingRemoteCall(r.cfg.Method, r.cfg.Service, r.cfg.Endpoint)
	switch tag.Kind {
	case TagText:
		call.SetStringTag(tag.Text)
	case TagBinary:
		call.SetByteTag(tag.Binary)
	}

	ctx = call.Start(ctx)
	defer call.End()

	err := r.runHandler(ctx, tag)
	if err != nil {
		call.Error(err)
		r.log.WarnWithContext(ctx, "request handler failed", err, map[string]interface{}{
			"method": r.cfg.Method,
		})
	}
	return err
}

func (r *Relay) runHandler(ctx context.Context, tag Tag) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()
	return r.handler(ctx, tag)
}

func (r *Relay) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if r.observer != nil {
		r.observer.ObserveOperation(observability.OperationContext{
			Component:   "relay",
			Operation:   operation,
			Resource:    resource,
			SubResource: subResource,
			Duration:    duration,
			Error:       err,
			Size:        size,
		})
	}
}
