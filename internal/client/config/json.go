package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/inocencio/inoauto/internal/flagx"
	"github.com/inocencio/inoauto/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "30s" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL     string         `json:"api_url"`
	PlacasBaseURL  string         `json:"placas_url"`
	PlacasToken    string         `json:"placas_token"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config flags via
// flagx.JsonConfigFlags(); when no flag is set, nothing is loaded. Fields
// absent from the JSON keep their current value. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.PlacasBaseURL != "" {
		cfg.PlacasBaseURL = jc.PlacasBaseURL
	}
	if jc.PlacasToken != "" {
		cfg.PlacasToken = jc.PlacasToken
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
