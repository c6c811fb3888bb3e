package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/weatherdesk/internal/flagx"
	"github.com/dmitrijs2005/weatherdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	AuthBaseURL    *string         `json:"auth_base_url"`
	WeatherBaseURL *string         `json:"weather_base_url"`
	WeatherAPIKey  *string         `json:"weather_api_key"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag it does nothing. Read or unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags().JSON
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

	setIf(&cfg.AuthBaseURL, jc.AuthBaseURL)
	setIf(&cfg.WeatherBaseURL, jc.WeatherBaseURL)
	setIf(&cfg.WeatherAPIKey, jc.WeatherAPIKey)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
