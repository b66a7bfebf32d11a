// Package config loads runtime configuration for the inoauto CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the inoauto REST API
//	-p string   base URL of the plate lookup service
//	-k string   access token for the plate lookup service
//	-t int      request timeout (seconds)
//
// Environment variables
//
//	INOAUTO_API_URL        base URL of the inoauto REST API
//	INOAUTO_PLACAS_URL     base URL of the plate lookup service
//	INOAUTO_PLACAS_TOKEN   access token for the plate lookup service
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://api.inoauto.com.br",
//	  "placas_url": "https://wdapi2.com.br",
//	  "placas_token": "abc123",
//	  "request_timeout": "30s"
//	}
package config
