package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/weatherdesk/internal/flagx"
)

const (
	envAuthURL    = "WEATHERDESK_AUTH_URL"
	envWeatherURL = "WEATHERDESK_WEATHER_URL"
	envAPIKey     = "WEATHERDESK_WEATHER_API_KEY"
	envTimeout    = "WEATHERDESK_REQUEST_TIMEOUT"
	envLogLevel   = "WEATHERDESK_LOG_LEVEL"
	envLogBackend = "WEATHERDESK_LOG_BACKEND"
)

// parseEnv overlays Config with WEATHERDESK_* environment variables.
//
// Before reading, a dotenv file is loaded into the process environment:
// the one named by -e/-env, or ./.env when present. Variables that are
// already set are not overwritten. An explicitly named file that cannot be
// read, or a malformed timeout, panics.
func parseEnv(cfg *Config) {
	loadDotenv(flagx.ConfigFileFlags().Env)

	if v, ok := os.LookupEnv(envAuthURL); ok {
		cfg.AuthBaseURL = v
	}
	if v, ok := os.LookupEnv(envWeatherURL); ok {
		cfg.WeatherBaseURL = v
	}
	if v, ok := os.LookupEnv(envAPIKey); ok {
		cfg.WeatherAPIKey = v
	}
	if v, ok := os.LookupEnv(envTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envLogBackend); ok {
		cfg.LogBackend = v
	}
}

func loadDotenv(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}

	// ./.env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
