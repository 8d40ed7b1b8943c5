package tracer

// State is the self-reported operating mode of the tracer client.
type State int

const (
	// StateUnknown is reported when the mode cannot be determined.
	StateUnknown State = iota

	// StateActive means spans are captured.
	StateActive

	// StatePermanentInactive means the client has no usable provider, either
	// because none was configured or because it has been shut down. It will
	// not become active again.
	StatePermanentInactive

	// StateTemporaryInactive means capturing was switched off by
	// configuration.
	StateTemporaryInactive
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StatePermanentInactive:
		return "PERMANENT_INACTIVE"
	case StateTemporaryInactive:
		return "TEMPORARY_INACTIVE"
	default:
		return "UNKNOWN"
	}
}
