package tracer

import (
	"context"
)

// Tracer is the tracing collaborator of the relay.
//
// This interface is implemented by the concrete *TracerClient type. Tests
// provide their own recording implementation.
type Tracer interface {
	// State reports whether the client is capturing.
	State() State

	// TraceIncomingRemoteCall creates, but does not start, the trace of one
	// remote call received by this process.
	TraceIncomingRemoteCall(method, service, endpoint string) IncomingRemoteCall
}

// IncomingRemoteCall is the trace of one remote call received by this
// process. Its lifecycle is strictly
//
//	create -> Set*Tag -> Start -> (Error) -> End
//
// and End must be called on every path once Start has been called:
//
//	call := t.TraceIncomingRemoteCall("myMethod", "myService", "endpoint")
//	call.SetStringTag(tag)
//	ctx = call.Start(ctx)
//	defer call.End()
//	if err := handle(ctx); err != nil {
//	    call.Error(err)
//	}
//
// An IncomingRemoteCall belongs to a single request and is not safe for
// concurrent use.
type IncomingRemoteCall interface {
	// SetStringTag attaches the caller's textual correlation tag. A tag in
	// W3C traceparent format also makes the caller's span the parent.
	// Must be called before Start.
	SetStringTag(tag string)

	// SetByteTag attaches the caller's binary correlation tag.
	// Must be called before Start.
	SetByteTag(tag []byte)

	// Start begins the span and returns a context carrying it.
	Start(ctx context.Context) context.Context

	// Error marks the span as failed with err.
	Error(err error)

	// End finishes the span. Calling End more than once is reported through
	// the logging callback and otherwise ignored.
	End()
}

// LoggingCallback receives diagnostics from the tracer client: exporter
// failures reported by the OpenTelemetry SDK and misuse of the
// IncomingRemoteCall lifecycle.
type LoggingCallback interface {
	Warn(message string)
	Error(message string)
}
