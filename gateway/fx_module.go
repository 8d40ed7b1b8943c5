package gateway

import (
	"go.uber.org/fx"
)

// FXModule provides *Gateway. It needs a gateway.Config, a *relay.Relay, a
// tracer.Tracer and a logger.Logger.
var FXModule = fx.Module("gateway",
	fx.Provide(New),
)
