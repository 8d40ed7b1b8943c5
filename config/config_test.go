package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/remotecall-server/listener"
	"github.com/aalemi-dev/remotecall-server/logger"
	"github.com/aalemi-dev/remotecall-server/relay"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "remotecall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, listener.DefaultPort, cfg.Gateway.Listener.Port)
	assert.Empty(t, cfg.Gateway.Listener.Host)
	assert.Equal(t, 15*time.Second, cfg.Gateway.FlushDelay)
	assert.Equal(t, relay.DefaultMethod, cfg.Relay.Method)
	assert.Equal(t, relay.DefaultService, cfg.Relay.Service)
	assert.Equal(t, relay.DefaultEndpoint, cfg.Relay.Endpoint)
	assert.Equal(t, logger.Info, cfg.Logger.Level)
	assert.Equal(t, DefaultServiceName, cfg.Tracer.ServiceName)
	assert.False(t, cfg.Tracer.EnableExport)
	assert.Empty(t, cfg.Metrics.Address)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default().Relay, cfg.Relay)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
gateway:
  listener:
    host: 127.0.0.1
    port: 40000
  flush_delay: 2s
logger:
  level: debug
tracer:
  enable_export: true
  endpoint: http://collector:4318/v1/traces
metrics:
  address: ":9090"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Gateway.Listener.Host)
	assert.Equal(t, 40000, cfg.Gateway.Listener.Port)
	assert.Equal(t, 2*time.Second, cfg.Gateway.FlushDelay)
	assert.Equal(t, logger.Debug, cfg.Logger.Level)
	assert.True(t, cfg.Tracer.EnableExport)
	assert.Equal(t, "http://collector:4318/v1/traces", cfg.Tracer.Endpoint)
	assert.Equal(t, ":9090", cfg.Metrics.Address)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultServiceName, cfg.Tracer.ServiceName)
	assert.Equal(t, relay.DefaultMethod, cfg.Relay.Method)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, `
gateway:
  listener:
    port: 40000
  flush_delay: 2s
logger:
  level: debug
`)
	t.Setenv("REMOTECALL_PORT", "40001")
	t.Setenv("REMOTECALL_FLUSH_DELAY", "500ms")
	t.Setenv("TRACER_DISABLED", "true")
	t.Setenv("METRICS_ADDRESS", "127.0.0.1:9191")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 40001, cfg.Gateway.Listener.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Gateway.FlushDelay)
	assert.True(t, cfg.Tracer.Disabled)
	assert.Equal(t, "127.0.0.1:9191", cfg.Metrics.Address)
	assert.Equal(t, logger.Debug, cfg.Logger.Level, "unset variables must not reset file values")
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("REMOTECALL_PORT", "not-a-port")

	_, err := Load("")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvironment)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeFile(t, "gateway: [not, a, map\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFile)
}

func TestFromEnvironment(t *testing.T) {
	path := writeFile(t, "relay:\n  service: fromfile\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := FromEnvironment()

	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Relay.Service)
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPort   int
		wantStderr string
		wantErr    error
	}{
		{
			name:     "no arguments",
			wantPort: listener.DefaultPort,
		},
		{
			name:     "port",
			args:     []string{"port=40000"},
			wantPort: 40000,
		},
		{
			name:     "last port wins",
			args:     []string{"port=40000", "port=0"},
			wantPort: 0,
		},
		{
			name:       "unknown argument is reported and ignored",
			args:       []string{"verbose", "port=40000"},
			wantPort:   40000,
			wantStderr: "unknown argument: verbose\n",
		},
		{
			name:    "not a number",
			args:    []string{"port=abc"},
			wantErr: ErrInvalidPort,
		},
		{
			name:    "out of range",
			args:    []string{"port=70000"},
			wantErr: ErrInvalidPort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			var stderr bytes.Buffer

			err := cfg.ApplyArgs(tt.args, &stderr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPort, cfg.Gateway.Listener.Port)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}
