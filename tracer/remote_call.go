package tracer

import (
	"context"
	"encoding/base64"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys set by IncomingRemoteCall.
const (
	AttributeEndpoint  = attribute.Key("remotecall.endpoint")
	AttributeTagKind   = attribute.Key("remotecall.tag.kind")
	AttributeTagString = attribute.Key("remotecall.tag.string")
	AttributeTagBytes  = attribute.Key("remotecall.tag.bytes")
)

const traceparentHeader = "traceparent"

type incomingRemoteCall struct {
	client   *TracerClient
	method   string
	service  string
	endpoint string

	tagKind   string
	stringTag string
	byteTag   []byte

	span  trace.Span
	ended bool
}

func (c *incomingRemoteCall) SetStringTag(tag string) {
	if c.span != nil {
		c.client.reportWarning("string tag set after start of " + c.method + "; ignored")
		return
	}
	c.tagKind, c.stringTag, c.byteTag = "string", tag, nil
}

func (c *incomingRemoteCall) SetByteTag(tag []byte) {
	if c.span != nil {
		c.client.reportWarning("byte tag set after start of " + c.method + "; ignored")
		return
	}
	c.tagKind, c.stringTag = "bytes", ""
	c.byteTag = append([]byte(nil), tag...)
}

func (c *incomingRemoteCall) Start(ctx context.Context) context.Context {
	if c.span != nil {
		c.client.reportWarning("remote call " + c.method + " already started")
		return trace.ContextWithSpan(ctx, c.span)
	}

	attrs := []attribute.KeyValue{
		semconv.RPCMethodKey.String(c.method),
		semconv.RPCServiceKey.String(c.service),
		AttributeEndpoint.String(c.endpoint),
	}
	parent := ctx

	switch c.tagKind {
	case "string":
		attrs = append(attrs, AttributeTagKind.String(c.tagKind), AttributeTagString.String(c.stringTag))
		parent = c.remoteParent(ctx, c.stringTag)
	case "bytes":
		attrs = append(attrs, AttributeTagKind.String(c.tagKind),
			AttributeTagBytes.String(base64.StdEncoding.EncodeToString(c.byteTag)))
	}

	ctx, c.span = c.client.tracer.Start(parent, c.method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
	return ctx
}

// remoteParent returns ctx carrying the caller's span context when tag is a
// valid traceparent, and ctx unchanged otherwise.
func (c *incomingRemoteCall) remoteParent(ctx context.Context, tag string) context.Context {
	extracted := c.client.propagator.Extract(ctx, propagation.MapCarrier{traceparentHeader: tag})
	sc := trace.SpanContextFromContext(extracted)
	if !sc.IsValid() || !sc.IsRemote() {
		return ctx
	}
	return extracted
}

func (c *incomingRemoteCall) Error(err error) {
	if err == nil {
		return
	}
	if c.span == nil {
		c.client.reportWarning("error reported before start of " + c.method + ": " + err.Error())
		return
	}
	c.span.RecordError(err)
	c.span.SetStatus(codes.Error, err.Error())
}

func (c *incomingRemoteCall) End() {
	switch {
	case c.span == nil:
		c.client.reportWarning("remote call " + c.method + " ended before it was started")
	case c.ended:
		c.client.reportWarning("remote call " + c.method + " already ended")
	default:
		c.ended = true
		c.span.End()
	}
}
