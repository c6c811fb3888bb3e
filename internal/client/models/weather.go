package models

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WeatherReport is the current weather for one city, replaced wholesale on
// every successful lookup.
type WeatherReport struct {
	CityName             string
	TemperatureCelsius   float64
	ConditionDescription string
	HumidityPercent      int
	// WindSpeed is in m/s (metric units).
	WindSpeed float64
}

// RoundedTemperature is the temperature shown to the user, rounded half away
// from zero.
func (w *WeatherReport) RoundedTemperature() int {
	return int(math.Round(w.TemperatureCelsius))
}

// DisplayDescription capitalizes every word: "clear sky" -> "Clear Sky".
// A Caser is stateful, so one is built per call.
func (w *WeatherReport) DisplayDescription() string {
	return cases.Title(language.English).String(w.ConditionDescription)
}
