package config

import "time"

// Config holds runtime settings for the HeritageWatch client.
//
// Units: RequestTimeout and OnlineCheckInterval are time.Duration values.
type Config struct {
	APIOrigin           string
	APIKey              string
	DatabasePath        string
	Languages           []string
	PageSize            int
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIOrigin = "http://127.0.0.1:8080"
	c.APIKey = "dev-api-key"
	c.DatabasePath = "heritagewatch.db"
	c.Languages = []string{"en-US"}
	c.PageSize = 10
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
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
