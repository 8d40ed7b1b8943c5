package listener

import "errors"

var (
	// ErrBind is returned when the listening socket cannot be opened, for
	// example because the port is already in use.
	ErrBind = errors.New("bind failed")

	// ErrAccept is returned when waiting for the client fails, including when
	// the listening socket is closed from outside or the context is cancelled.
	ErrAccept = errors.New("accept failed")
)
