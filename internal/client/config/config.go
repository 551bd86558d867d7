// Package config loads runtime settings for the Talentum CLI. Values come
// from defaults, then an optional JSON file, then command-line flags, with
// later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the Talentum CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - RequestTimeout: fixed timeout applied uniformly to every request.
//   - TokenFile: path of the persisted session token; empty means
//     the default location under the user's home directory.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	TokenFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.TokenFile = ""
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
