// Package logger provides the structured logger of the remote call server.
//
// It wraps Uber's zap with a small API of the shape
//
//	log.Info(msg string, err error, fields ...map[string]interface{})
//
// and writes JSON entries to stderr. The *WithContext variants add trace_id
// and span_id of the active OpenTelemetry span when Config.EnableTracing is
// set, which correlates the relay's log lines with the span it reports.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: logger.Info, ServiceName: "remotecall-server"}),
//		fx.WithLogger(logger.FXEventLogger),
//	)
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id to context logs
//	LOGGER_SERVICE_NAME=my-service  # value of the "service" field
//	LOGGER_CALLER_SKIP=1            # stack frames skipped for caller reporting
package logger
