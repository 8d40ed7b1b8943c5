// Package observability defines the hook the gateway stages use to report
// completed operations.
//
// The listener, the relay and the gateway each accept an optional Observer and
// call it after every operation they perform:
//
//	func (l *Listener) observeOperation(operation, resource, subResource string, duration time.Duration, err error) {
//	    if l.observer != nil {
//	        l.observer.ObserveOperation(observability.OperationContext{
//	            Component: "listener",
//	            Operation: operation,
//	            ...
//	        })
//	    }
//	}
//
// The metrics package ships an Observer that turns these notifications into
// Prometheus counters and histograms. Tests usually pass an ObserverFunc that
// appends the contexts to a slice.
//
// # FX Integration
//
// Provide an implementation as observability.Observer and every FXModule in
// this module picks it up through an optional dependency:
//
//	fx.Provide(
//	    fx.Annotate(
//	        func(m *metrics.Metrics) *metrics.Metrics { return m },
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// # Thread Safety
//
// Observer implementations must be safe for concurrent use.
package observability
