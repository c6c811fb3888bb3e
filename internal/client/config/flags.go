package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/weatherdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     user directory base URL
//	-w string     weather API base URL
//	-k string     weather API key
//	-t duration   per-request timeout, e.g. 5s
//	-l string     log level (debug, info, warn, error)
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// loaders do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthBaseURL, "a", cfg.AuthBaseURL, "user directory base URL")
	fs.StringVar(&cfg.WeatherBaseURL, "w", cfg.WeatherBaseURL, "weather API base URL")
	fs.StringVar(&cfg.WeatherAPIKey, "k", cfg.WeatherAPIKey, "weather API key")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
