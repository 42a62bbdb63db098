package domain

import (
	"fmt"
	"math"
)

// Coordinate is a WGS-84 latitude/longitude pair selected for assessment.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate validates the pair. Non-finite or out-of-range values are
// rejected rather than clamped: a bad coordinate means a bad map click.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinate{}, fmt.Errorf("coordinate must be finite, got (%v, %v)", lat, lon)
	}
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// String renders the coordinate with hemisphere suffixes, e.g. "36.80°N, 34.60°E".
func (c Coordinate) String() string {
	latHemi := "N"
	if c.Latitude < 0 {
		latHemi = "S"
	}
	lonHemi := "E"
	if c.Longitude < 0 {
		lonHemi = "W"
	}
	return fmt.Sprintf("%.2f°%s, %.2f°%s", math.Abs(c.Latitude), latHemi, math.Abs(c.Longitude), lonHemi)
}
