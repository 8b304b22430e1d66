// Package config handles configuration for the prover CLI,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the prover CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the verifier gRPC endpoint.
//   - RequestTimeout: per-RPC deadline.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
