package relay

// Identifiers the relay reports each received call under.
const (
	DefaultMethod   = "myMethod"
	DefaultService  = "myService"
	DefaultEndpoint = "endpoint"
)

// DefaultMaxTagSize bounds how many bytes are read for one tag.
const DefaultMaxTagSize = 1 << 20

// Config defines how received calls are reported.
type Config struct {
	// Method, Service and Endpoint name the traced remote call. Empty values
	// fall back to the Default* constants.
	Method   string `yaml:"method" envconfig:"RELAY_METHOD"`
	Service  string `yaml:"service" envconfig:"RELAY_SERVICE"`
	Endpoint string `yaml:"endpoint" envconfig:"RELAY_ENDPOINT"`

	// MaxTagSize is the maximum number of bytes read from the connection.
	// A larger payload is reported as truncated. 0 means DefaultMaxTagSize.
	MaxTagSize int64 `yaml:"max_tag_size" envconfig:"RELAY_MAX_TAG_SIZE"`
}

func (c Config) withDefaults() Config {
	if c.Method == "" {
		c.Method = DefaultMethod
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.MaxTagSize <= 0 {
		c.MaxTagSize = DefaultMaxTagSize
	}
	return c
}
