package tracer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/aalemi-dev/remotecall-server/tracer"

// TracerClient is the OpenTelemetry backed implementation of Tracer.
//
// It is constructed once per process and passed explicitly to the relay; it
// never installs itself behind a package-level variable of this module.
// TracerClient is safe for concurrent use.
type TracerClient struct {
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	disabled   bool
	shutdown   atomic.Bool

	mu       sync.RWMutex
	callback LoggingCallback
}

// NewClient creates a TracerClient from cfg.
//
// With EnableExport an OTLP HTTP exporter is attached through a batch span
// processor; spans are flushed by Shutdown. The provider and the W3C trace
// context propagator are also registered as OpenTelemetry globals.
//
// Example:
//
//	client, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "remotecall-server",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Shutdown(context.Background())
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	if cfg.Disabled {
		return newDisabledClient(), nil
	}

	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		var httpOptions []otlptracehttp.Option
		if cfg.Endpoint != "" {
			httpOptions = append(httpOptions, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(httpOptions...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(newResource(cfg)))

	tp := sdktrace.NewTracerProvider(options...)
	client := NewClientWithProvider(cfg, tp)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(client.propagator)

	return client, nil
}

// NewClientWithProvider wraps an existing provider. It does not touch the
// OpenTelemetry globals, which makes it the constructor of choice for tests
// that record spans with tracetest.SpanRecorder.
//
// A nil provider yields a client in StatePermanentInactive.
func NewClientWithProvider(cfg Config, tp *sdktrace.TracerProvider) *TracerClient {
	if cfg.Disabled {
		return newDisabledClient()
	}

	client := &TracerClient{
		provider:   tp,
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}
	if tp != nil {
		client.tracer = tp.Tracer(instrumentationName)
	} else {
		client.tracer = noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return client
}

func newDisabledClient() *TracerClient {
	return &TracerClient{
		tracer:     noop.NewTracerProvider().Tracer(instrumentationName),
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
		disabled:   true,
	}
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)
}

// State reports the operating mode of the client.
func (t *TracerClient) State() State {
	switch {
	case t.disabled:
		return StateTemporaryInactive
	case t.provider == nil || t.shutdown.Load():
		return StatePermanentInactive
	default:
		return StateActive
	}
}

// SetLoggingCallback registers cb as the receiver of tracer diagnostics and
// routes OpenTelemetry SDK errors to it. Call it once at startup.
func (t *TracerClient) SetLoggingCallback(cb LoggingCallback) {
	t.mu.Lock()
	t.callback = cb
	t.mu.Unlock()

	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		t.reportError("tracing SDK error: " + err.Error())
	}))
}

// TraceIncomingRemoteCall implements Tracer.
func (t *TracerClient) TraceIncomingRemoteCall(method, service, endpoint string) IncomingRemoteCall {
	return &incomingRemoteCall{
		client:   t,
		method:   method,
		service:  service,
		endpoint: endpoint,
	}
}

// Shutdown flushes pending spans and releases the provider. Afterwards the
// client reports StatePermanentInactive.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if !t.shutdown.CompareAndSwap(false, true) {
		return nil
	}
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

func (t *TracerClient) reportWarning(msg string) {
	t.mu.RLock()
	cb := t.callback
	t.mu.RUnlock()
	if cb != nil {
		cb.Warn(msg)
	}
}

func (t *TracerClient) reportError(msg string) {
	t.mu.RLock()
	cb := t.callback
	t.mu.RUnlock()
	if cb != nil {
		cb.Error(msg)
	}
}
