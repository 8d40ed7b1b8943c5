package config

import "errors"

var (
	// ErrReadFile is returned when the configuration file cannot be read.
	ErrReadFile = errors.New("failed to read configuration file")

	// ErrParseFile is returned when the configuration file is not valid YAML
	// for Config.
	ErrParseFile = errors.New("failed to parse configuration file")

	// ErrEnvironment is returned when an environment variable cannot be
	// converted to the type of its field.
	ErrEnvironment = errors.New("failed to process environment")

	// ErrInvalidPort is returned for a port= argument that is not a TCP port
	// number.
	ErrInvalidPort = errors.New("invalid port")
)
