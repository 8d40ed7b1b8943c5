package observability

// NoOpObserver discards every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver returns an Observer that discards everything.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
