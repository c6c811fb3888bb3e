// Package config loads runtime configuration for the weatherdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed WEATHERDESK_, after loading a dotenv
//     file named by -e/-env or ./.env if it exists (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     user directory base URL
//	-w string     weather API base URL
//	-k string     weather API key
//	-t duration   per-request timeout
//	-l string     log level
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "auth_base_url": "https://dummyjson.com",
//	  "weather_base_url": "https://api.openweathermap.org/data/2.5",
//	  "weather_api_key": "...",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_backend": "zap"
//	}
package config
