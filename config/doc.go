// Package config assembles the configuration of the remote call server from
// the per-package Config types.
//
// Sources are applied in this order, each overriding the previous one:
//
//  1. Default()
//  2. the YAML file named by REMOTECALL_CONFIG
//  3. environment variables (the envconfig tags of each Config)
//  4. the port=<int> command line argument
//
// Example file:
//
//	gateway:
//	  listener:
//	    port: 33744
//	  flush_delay: 15s
//	logger:
//	  level: debug
//	tracer:
//	  enable_export: true
//	  endpoint: http://otel-collector:4318/v1/traces
//	metrics:
//	  address: ":9090"
package config
