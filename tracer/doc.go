// Package tracer is the tracing collaborator of the remote call server.
//
// It exposes the narrow API the relay needs, backed by the OpenTelemetry SDK:
//
//   - State reports whether spans are captured (ACTIVE, PERMANENT_INACTIVE,
//     TEMPORARY_INACTIVE, UNKNOWN).
//   - TraceIncomingRemoteCall creates the SERVER span of one received call,
//     tagged with the correlation tag sent by the caller.
//   - SetLoggingCallback routes SDK diagnostics to the application logger.
//
// A string tag in W3C traceparent format continues the caller's trace; any
// other tag is recorded as a span attribute only. Byte tags are stored base64
// encoded in "remotecall.tag.bytes".
//
// The client is an ordinary value created by NewClient (or FXModule) and handed
// to whoever needs it. Tests build one with NewClientWithProvider and a
// tracetest.SpanRecorder, or replace it with their own Tracer implementation.
package tracer
