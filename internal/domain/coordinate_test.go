package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate_Valid(t *testing.T) {
	coord, err := NewCoordinate(36.8, 34.6)
	require.NoError(t, err)
	assert.Equal(t, 36.8, coord.Latitude)
	assert.Equal(t, 34.6, coord.Longitude)

	// Range edges are inclusive.
	_, err = NewCoordinate(90, 180)
	assert.NoError(t, err)
	_, err = NewCoordinate(-90, -180)
	assert.NoError(t, err)
}

func TestNewCoordinate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{name: "latitude too high", lat: 90.1, lon: 0},
		{name: "latitude too low", lat: -90.1, lon: 0},
		{name: "longitude too high", lat: 0, lon: 180.1},
		{name: "longitude too low", lat: 0, lon: -180.1},
		{name: "latitude NaN", lat: math.NaN(), lon: 0},
		{name: "longitude NaN", lat: 0, lon: math.NaN()},
		{name: "latitude Inf", lat: math.Inf(1), lon: 0},
		{name: "longitude -Inf", lat: 0, lon: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCoordinate(tt.lat, tt.lon)
			assert.Error(t, err)
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "36.80°N, 34.60°E", Coordinate{Latitude: 36.8, Longitude: 34.6}.String())
	assert.Equal(t, "33.90°S, 58.40°W", Coordinate{Latitude: -33.9, Longitude: -58.4}.String())
	assert.Equal(t, "0.00°N, 0.00°E", Coordinate{}.String())
}
