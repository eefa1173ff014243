package config

import "time"

// Config holds runtime settings for the vibe tracker terminal client.
//
// Fields:
//   - ServerURL: base URL of the REST API, e.g. http://127.0.0.1:8080.
//   - RequestTimeout: upper bound for a single API call.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerURL           string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

const DefaultOnlineCheckInterval = 3 * time.Second

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
	c.OnlineCheckInterval = DefaultOnlineCheckInterval
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
