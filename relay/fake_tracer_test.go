package relay

import (
	"context"
	"sync"

	"github.com/aalemi-dev/remotecall-server/tracer"
)

// fakeTracer records every remote call so tests can assert on the lifecycle.
type fakeTracer struct {
	mu    sync.Mutex
	calls []*fakeCall
}

func (f *fakeTracer) State() tracer.State {
	return tracer.StateActive
}

func (f *fakeTracer) TraceIncomingRemoteCall(method, service, endpoint string) tracer.IncomingRemoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := &fakeCall{method: method, service: service, endpoint: endpoint}
	f.calls = append(f.calls, call)
	return call
}

func (f *fakeTracer) recorded() []*fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeCall(nil), f.calls...)
}

type fakeCall struct {
	method   string
	service  string
	endpoint string

	stringTag    string
	hasStringTag bool
	byteTag      []byte
	hasByteTag   bool

	started int
	ended   int
	errs    []error
}

func (c *fakeCall) SetStringTag(tag string) {
	c.stringTag, c.hasStringTag = tag, true
}

func (c *fakeCall) SetByteTag(tag []byte) {
	c.byteTag, c.hasByteTag = tag, true
}

func (c *fakeCall) Start(ctx context.Context) context.Context {
	c.started++
	return ctx
}

func (c *fakeCall) Error(err error) {
	c.errs = append(c.errs, err)
}

func (c *fakeCall) End() {
	c.ended++
}
