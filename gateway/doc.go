// Package gateway is the remote call server itself: it accepts exactly one
// client, hands the connection to the relay and then waits for telemetry to be
// flushed.
//
// # Lifecycle
//
//	gw.LogTracerState()
//	if err := gw.Run(ctx); err != nil {
//	    // bind or accept failed
//	}
//	_ = gw.WaitForFlush(ctx)
//
// Run is Listen followed by Serve; callers that need the bound address (for
// example when listening on port 0) call the two separately.
//
// # Errors
//
// A payload that cannot be decoded is logged once and otherwise ignored: the
// server still flushes and exits normally. Bind and accept failures are
// returned with a stack trace attached.
//
// # FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    relay.FXModule,
//	    gateway.FXModule,
//	    fx.Supply(gatewayConfig, relayConfig, loggerConfig, tracerConfig),
//	)
package gateway
