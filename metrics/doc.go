// Package metrics exposes the remote call server's operations to Prometheus.
//
// NewMetrics builds a private registry holding the Go runtime, process and
// build info collectors plus three gateway metrics:
//
//	remotecall_operations_total{component,operation,status}
//	remotecall_operation_duration_seconds{component,operation}
//	remotecall_tag_size_bytes
//
// Every metric carries a constant service label. *Metrics implements
// observability.Observer; FXModule provides it under that interface so the
// listener, the relay and the gateway report into it automatically.
//
// The server lives only as long as the process. Since the gateway waits out a
// flush delay before exiting, that delay is also the scrape window.
//
// # Configuration
//
//	METRICS_ADDRESS=:9090             # empty disables the HTTP server
//	METRICS_SERVICE_NAME=remotecall   # value of the service label
package metrics
