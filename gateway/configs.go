package gateway

import (
	"time"

	"github.com/aalemi-dev/remotecall-server/listener"
)

// DefaultFlushDelay is how long the server stays alive after the request so
// that buffered telemetry can be exported.
const DefaultFlushDelay = 15 * time.Second

// Config defines the single-shot server.
type Config struct {
	// Listener is the TCP socket the gateway accepts its one client on. It is
	// read from the environment separately from the rest of Config.
	Listener listener.Config `yaml:"listener" ignored:"true"`

	// FlushDelay is the wait after the request has been handled.
	// Zero disables the wait.
	FlushDelay time.Duration `yaml:"flush_delay" envconfig:"REMOTECALL_FLUSH_DELAY"`
}
