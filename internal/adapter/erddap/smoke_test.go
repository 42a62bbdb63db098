//go:build erddap

package erddap

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
)

// These tests hit the real NOAA ERDDAP service.
// Run with: go test -tags=erddap ./internal/adapter/erddap/ -v -count=1

func TestSmoke_FetchSST(t *testing.T) {
	c := NewClient(
		"https://coastwatch.pfeg.noaa.gov/erddap/griddap/NOAA_DHW.json",
		10*time.Second,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	// Mersin Bay, eastern Mediterranean.
	celsius, err := c.FetchSST(context.Background(), domain.Coordinate{Latitude: 36.8, Longitude: 34.6})
	require.NoError(t, err)

	assert.Greater(t, celsius, 5.0, "mediterranean sst should be plausible")
	assert.Less(t, celsius, 40.0, "mediterranean sst should be plausible")
}
