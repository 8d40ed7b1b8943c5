package observability

import "time"

// Observer receives a notification every time one of the gateway stages
// (listener, relay, gateway) finishes an operation. It lets metrics, logging
// or anything else hook into the request path without the stages knowing
// about those backends.
//
// Observers are optional: every stage works with a nil Observer.
type Observer interface {
	// ObserveOperation is called once per completed operation.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the stage that performed the operation.
	// Values used in this module: "listener", "relay", "gateway".
	Component string

	// Operation is what the stage did.
	//   listener: "bind", "accept"
	//   relay:    "decode", "trace"
	//   gateway:  "serve", "flush"
	Operation string

	// Resource is the primary thing operated on, for example the bound
	// address or the traced method name.
	Resource string

	// SubResource gives extra resource context, for example the remote
	// address of the client or the tag kind.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation; nil on success.
	Error error

	// Size is the number of bytes involved, when meaningful (tag length).
	Size int64

	// Metadata carries anything that does not fit the fields above.
	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
