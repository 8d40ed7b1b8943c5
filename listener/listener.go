package listener

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/aalemi-dev/remotecall-server/observability"
)

// Listener is a TCP listening socket that hands out exactly one connection.
type Listener struct {
	ln       net.Listener
	observer observability.Observer

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Listener.
type Option func(*Listener)

// WithObserver reports the bind and accept operations to observer.
func WithObserver(observer observability.Observer) Option {
	return func(l *Listener) {
		l.observer = observer
	}
}

// Listen binds a TCP socket on cfg.Host:cfg.Port. Failures wrap ErrBind.
func Listen(ctx context.Context, cfg Config, opts ...Option) (*Listener, error) {
	l := &Listener{}
	for _, opt := range opts {
		opt(l)
	}

	address := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	start := time.Now()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrBind, address, err)
		l.observeOperation("bind", address, "", time.Since(start), err)
		return nil, err
	}

	l.ln = ln
	l.observeOperation("bind", ln.Addr().String(), "", time.Since(start), nil)
	return l, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Accept blocks until one client connects, then closes the listening socket
// and returns the connection. There is no timeout; cancelling ctx closes the
// socket and makes Accept return. Failures wrap ErrAccept.
//
// Accept is single use: once it returned, the socket is closed and further
// connection attempts are refused by the operating system.
func (l *Listener) Accept(ctx context.Context) (net.Conn, error) {
	stop := context.AfterFunc(ctx, func() { _ = l.Close() })
	defer stop()

	start := time.Now()
	conn, err := l.ln.Accept()
	closeErr := l.Close()

	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ErrAccept, context.Cause(ctx))
		} else {
			err = fmt.Errorf("%w: %w", ErrAccept, err)
		}
		l.observeOperation("accept", l.ln.Addr().String(), "", time.Since(start), err)
		return nil, err
	}

	if closeErr != nil {
		_ = conn.Close()
		err = fmt.Errorf("%w: closing listening socket: %w", ErrAccept, closeErr)
		l.observeOperation("accept", l.ln.Addr().String(), conn.RemoteAddr().String(), time.Since(start), err)
		return nil, err
	}

	l.observeOperation("accept", l.ln.Addr().String(), conn.RemoteAddr().String(), time.Since(start), nil)
	return conn, nil
}

// Close releases the listening socket. It is safe to call more than once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.ln.Close()
	})
	return l.closeErr
}

func (l *Listener) observeOperation(operation, resource, subResource string, duration time.Duration, err error) {
	if l.observer != nil {
		l.observer.ObserveOperation(observability.OperationContext{
			Component:   "listener",
			Operation:   operation,
			Resource:    resource,
			SubResource: subResource,
			Duration:    duration,
			Error:       err,
		})
	}
}
