package relay

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/observability"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

// FXModule provides *Relay. It needs a relay.Config, a tracer.Tracer and a
// logger.Logger; an observability.Observer and a Handler are picked up when
// present.
var FXModule = fx.Module("relay",
	fx.Provide(NewRelayWithDI),
)

// RelayParams groups the dependencies of NewRelayWithDI.
type RelayParams struct {
	fx.In

	Config   Config
	Tracer   tracer.Tracer
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
	Handler  Handler                `optional:"true"`
}

// NewRelayWithDI builds a Relay from injected dependencies.
func NewRelayWithDI(params RelayParams) *Relay {
	var opts []Option
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	if params.Handler != nil {
		opts = append(opts, WithHandler(params.Handler))
	}
	return New(params.Config, params.Tracer, params.Logger, opts...)
}
