// Package config handles configuration for the verifier server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the ZKP verifier server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use
//     the test default in prod.
//   - SessionValidityDuration: lifetime of a session credential issued on a
//     successful proof.
//   - ChallengeTTL: how long an unanswered challenge stays answerable.
//   - ReapInterval: how often abandoned challenges are swept out.
type Config struct {
	EndpointAddrGRPC        string
	SecretKey               string
	SessionValidityDuration time.Duration
	ChallengeTTL            time.Duration
	ReapInterval            time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 30 * time.Minute
	c.ChallengeTTL = 2 * time.Minute
	c.ReapInterval = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
