package listener

// DefaultPort is the port the remote call server listens on when none is
// configured.
const DefaultPort = 33744

// Config defines where the listener binds.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `yaml:"host" envconfig:"REMOTECALL_HOST"`

	// Port is the TCP port. 0 picks an ephemeral port; use Listener.Addr to
	// find out which one.
	Port int `yaml:"port" envconfig:"REMOTECALL_PORT"`
}
