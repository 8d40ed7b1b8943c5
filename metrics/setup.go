package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aalemi-dev/remotecall-server/observability"
)

const namespace = "remotecall"

// Metrics owns the Prometheus registry of the process and, when an address is
// configured, the HTTP server exposing it. It implements
// observability.Observer so the gateway stages can report into it.
type Metrics struct {
	// Server exposes Registry on /metrics. Nil when Config.Address is empty.
	Server *http.Server

	// Registry holds the Go runtime, process and gateway operation metrics.
	Registry *prometheus.Registry

	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	tagBytes   prometheus.Histogram
}

var _ observability.Observer = (*Metrics)(nil)

// NewMetrics creates the registry, registers the runtime collectors and the
// gateway operation metrics, and prepares (without starting) the HTTP server.
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "remotecall-server"})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	m := &Metrics{
		Registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Completed gateway operations by component, operation and status.",
		}, []string{"component", "operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of gateway operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component", "operation"}),
		tagBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tag_size_bytes",
			Help:      "Size of the correlation tags received from callers.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 10),
		}),
	}

	registerer.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
		m.operations,
		m.durations,
		m.tagBytes,
	)

	if cfg.Address != "" {
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
	}

	return m
}

// ObserveOperation implements observability.Observer.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	m.operations.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	m.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Component == "relay" && ctx.Operation == "decode" && ctx.Error == nil {
		m.tagBytes.Observe(float64(ctx.Size))
	}
}
