package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this process in exported traces
	// ("service.name" resource attribute).
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment, exported as
	// "deployment.environment" and "environment".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport configures an OTLP HTTP exporter with a batch span
	// processor. When false spans are recorded but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the OTLP HTTP endpoint URL, for example
	// "http://otel-collector:4318/v1/traces". When empty the exporter falls
	// back to the OTEL_EXPORTER_OTLP_* environment variables.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Disabled deactivates capturing. The client then reports
	// StateTemporaryInactive and hands out non-recording remote calls.
	Disabled bool `yaml:"disabled" envconfig:"TRACER_DISABLED"`
}
