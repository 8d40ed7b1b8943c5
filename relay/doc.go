// Package relay turns the single tag a caller sends into an "incoming remote
// call" trace.
//
// # Wire format
//
// The caller writes exactly one gob encoded Envelope and may then close its
// side. Nothing is sent back. EncodeTag is the client side of the exchange.
//
// # Tags
//
// A string value becomes a text tag, a []byte value a binary tag. Any other
// decodable value is logged as "invalid tag received" and the call is traced
// without a tag.
//
// # Errors
//
// Handle only fails with ErrDecode, when the stream is empty, truncated or
// not gob. Failures of the request handler are recorded on the span and
// logged, never returned.
package relay
