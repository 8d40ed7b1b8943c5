package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/remotecall-server/gateway"
	"github.com/aalemi-dev/remotecall-server/listener"
	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/metrics"
	"github.com/aalemi-dev/remotecall-server/relay"
	"github.com/aalemi-dev/remotecall-server/tracer"
)

// EnvConfigPath names the environment variable holding the path of the
// optional YAML configuration file.
const EnvConfigPath = "REMOTECALL_CONFIG"

// DefaultServiceName is reported by the logger, the tracer and the metrics.
const DefaultServiceName = "remotecall-server"

const portArgPrefix = "port="

// Config is the complete configuration of the remote call server.
type Config struct {
	Gateway gateway.Config `yaml:"gateway"`
	Relay   relay.Config   `yaml:"relay"`
	Logger  logger.Config  `yaml:"logger"`
	Tracer  tracer.Config  `yaml:"tracer"`
	Metrics metrics.Config `yaml:"metrics"`
}

// Default returns the built-in configuration: listen on every interface on
// listener.DefaultPort, wait gateway.DefaultFlushDelay before exiting, log
// at info level and record spans without exporting them.
func Default() Config {
	return Config{
		Gateway: gateway.Config{
			Listener:   listener.Config{Port: listener.DefaultPort},
			FlushDelay: gateway.DefaultFlushDelay,
		},
		Relay: relay.Config{
			Method:     relay.DefaultMethod,
			Service:    relay.DefaultService,
			Endpoint:   relay.DefaultEndpoint,
			MaxTagSize: relay.DefaultMaxTagSize,
		},
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: DefaultServiceName,
			CallerSkip:  1,
		},
		Tracer: tracer.Config{
			ServiceName: DefaultServiceName,
		},
		Metrics: metrics.Config{
			ServiceName: DefaultServiceName,
		},
	}
}

// Load builds the configuration from Default, then the YAML file at path (if
// path is not empty), then the environment. Later sources override earlier
// ones field by field.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrReadFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrParseFile, path, err)
		}
	}

	if err := cfg.processEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnvironment is Load with the path taken from REMOTECALL_CONFIG.
func FromEnvironment() (Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// processEnv applies environment overrides. Each section is processed on its
// own with an empty prefix so that the keys are exactly the envconfig tags.
func (c *Config) processEnv() error {
	sections := []interface{}{
		&c.Gateway,
		&c.Gateway.Listener,
		&c.Relay,
		&c.Logger,
		&c.Tracer,
		&c.Metrics,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return fmt.Errorf("%w: %w", ErrEnvironment, err)
		}
	}
	return nil
}

// ApplyArgs applies command line arguments. The only argument understood is
// port=<int>; anything else is reported on stderr and ignored. A port that
// is not a number between 0 and 65535 is an error.
func (c *Config) ApplyArgs(args []string, stderr io.Writer) error {
	for _, arg := range args {
		value, ok := strings.CutPrefix(arg, portArgPrefix)
		if !ok {
			_, _ = fmt.Fprintf(stderr, "unknown argument: %s\n", arg)
			continue
		}

		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidPort, value, err)
		}
		if port < 0 || port > 65535 {
			return fmt.Errorf("%w: %d is out of range", ErrInvalidPort, port)
		}
		c.Gateway.Listener.Port = port
	}
	return nil
}
