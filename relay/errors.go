package relay

import "errors"

var (
	// ErrDecode is returned by Handle when the connection does not carry a
	// decodable tag: the stream was closed before any data, was truncated, or
	// is not in the expected encoding.
	ErrDecode = errors.New("failed to decode tag")

	// ErrHandlerPanic wraps a panic raised by the request handler. It is
	// recorded on the span, never returned from Handle.
	ErrHandlerPanic = errors.New("request handler panicked")
)
