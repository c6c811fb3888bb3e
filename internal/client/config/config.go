package config

import "time"

// Config holds runtime settings for the weatherdesk CLI.
//
// Fields:
//   - AuthBaseURL: root of the user directory API (login, signup, user list).
//   - WeatherBaseURL: root of the current-weather API.
//   - WeatherAPIKey: key sent as the appid query parameter.
//   - RequestTimeout: upper bound for one upstream round trip.
//   - LogLevel, LogBackend: diagnostics written to stderr.
type Config struct {
	AuthBaseURL    string
	WeatherBaseURL string
	WeatherAPIKey  string
	RequestTimeout time.Duration
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthBaseURL = "https://dummyjson.com"
	c.WeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	c.WeatherAPIKey = ""
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a dotenv file), JSON and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
