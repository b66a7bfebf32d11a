package config

import (
	"flag"
	"os"
	"time"

	"github.com/inocencio/inoauto/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the inoauto REST API (default from Config)
//	-p string   base URL of the plate lookup service (default from Config)
//	-k string   access token for the plate lookup service
//	-t int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the inoauto API")
	fs.StringVar(&cfg.PlacasBaseURL, "p", cfg.PlacasBaseURL, "base URL of the plate lookup service")
	fs.StringVar(&cfg.PlacasToken, "k", cfg.PlacasToken, "access token for the plate lookup service")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
