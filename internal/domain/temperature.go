package domain

import (
	"math"
	"time"
)

// Temperature source labels recorded as reading provenance.
const (
	SourceSatellite = "satellite-live"
	SourceModel     = "geographic-model"
)

// TemperatureReading is one resolved sea-surface temperature observation.
// Readings are created once per query and never mutated.
type TemperatureReading struct {
	Celsius    float64   `json:"celsius"`
	Live       bool      `json:"live"`
	Source     string    `json:"source"`
	ObservedAt time.Time `json:"observed_at"`
}

// KelvinToCelsius converts a satellite-reported Kelvin value to Celsius.
func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - 273.15
}

// Round1 rounds to one decimal place, the precision carried by all
// temperature values in the system.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FallbackTemperature estimates sea-surface temperature from latitude and
// month alone: a latitude-cosine base curve plus a sinusoidal seasonal cycle
// peaking in June, clamped to the 10–36°C marine range.
func FallbackTemperature(latitude float64, month time.Month) float64 {
	base := 28*math.Cos(math.Abs(latitude)*math.Pi/180) + 5
	seasonal := 3 * math.Sin(float64(int(month)-3)*math.Pi/6)
	temp := math.Max(10, math.Min(36, base+seasonal))
	return Round1(temp)
}

// ModelReading builds a geographic-model reading for the coordinate at the
// clock's current month.
func ModelReading(coord Coordinate) TemperatureReading {
	now := clock.Now().UTC()
	return TemperatureReading{
		Celsius:    FallbackTemperature(coord.Latitude, now.Month()),
		Live:       false,
		Source:     SourceModel,
		ObservedAt: now,
	}
}
