package metrics

// Config defines the Prometheus endpoint of the remote call server.
type Config struct {
	// Address is where the /metrics HTTP server listens, for example ":9090"
	// or "127.0.0.1:9090". An empty address disables the server; operations
	// are still counted in the registry.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
