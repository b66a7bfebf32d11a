package config

import "os"

// parseEnv overlays Config with values from the environment. Unset variables
// keep the current value; the empty string is treated as unset.
func parseEnv(cfg *Config) {
	if v := os.Getenv("INOAUTO_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("INOAUTO_PLACAS_URL"); v != "" {
		cfg.PlacasBaseURL = v
	}
	if v := os.Getenv("INOAUTO_PLACAS_TOKEN"); v != "" {
		cfg.PlacasToken = v
	}
}
