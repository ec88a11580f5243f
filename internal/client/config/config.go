package config

import "time"

// Config holds runtime settings for the AuthShell client.
//
// Fields:
//   - APIBaseURL: base URL of the identity service, including the /api prefix.
//   - RequestTimeout: client-side timeout for identity service calls.
//   - DatabaseDSN: path/DSN of the local SQLite settings database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabaseDSN = "authshell.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
