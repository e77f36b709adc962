// Package config loads runtime settings for the Cookenu CLI. Values come
// from defaults, then an optional JSON file, then command-line flags, with
// later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
