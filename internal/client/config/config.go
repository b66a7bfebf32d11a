package config

import (
	"time"

	"github.com/inocencio/inoauto/internal/client/placas"
)

// Config holds runtime settings for the inoauto CLI.
//
// Fields:
//   - APIBaseURL: base URL of the inoauto REST API.
//   - PlacasBaseURL: base URL of the external plate lookup service.
//   - PlacasToken: access token for the plate lookup service. Required;
//     there is no default.
//   - RequestTimeout: timeout applied to every outgoing HTTP request.
type Config struct {
	APIBaseURL     string
	PlacasBaseURL  string
	PlacasToken    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.PlacasBaseURL = placas.DefaultBaseURL
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
