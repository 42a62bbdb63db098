// Package temperature resolves a sea-surface temperature reading for a
// coordinate, preferring the live satellite source and degrading to the
// geographic model on any failure.
package temperature

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
)

// SSTFetcher fetches live sea-surface temperature in °C for a coordinate.
type SSTFetcher interface {
	FetchSST(ctx context.Context, coord domain.Coordinate) (float64, error)
}

// Resolver is the two-stage temperature provider: try the live source, fall
// back to the geographic model. Live results are memoized per coordinate
// within a TTL window.
type Resolver struct {
	live    SSTFetcher // nil disables the live path entirely
	cache   *readingCache
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewResolver creates a Resolver. Pass a nil fetcher to force the model path
// regardless of the per-request live flag, and a nil clock for real time.
func NewResolver(live SSTFetcher, cacheTTL time.Duration, cacheSize int, clk clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Resolver{
		live:    live,
		cache:   newReadingCache(cacheTTL, cacheSize, clk),
		clock:   clk,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns a temperature reading for the coordinate. It never fails:
// the worst case is a clearly labeled geographic-model estimate. The
// reading's Source field is the observable outcome of the failure path.
func (r *Resolver) Resolve(ctx context.Context, coord domain.Coordinate, useLive bool) domain.TemperatureReading {
	if !useLive || r.live == nil {
		return domain.ModelReading(coord)
	}

	key := cacheKey(coord)
	if reading, ok := r.cache.get(key); ok {
		r.metrics.SSTCache.WithLabelValues("hit").Inc()
		return reading
	}
	r.metrics.SSTCache.WithLabelValues("miss").Inc()

	celsius, err := r.live.FetchSST(ctx, coord)
	if err != nil {
		r.logger.Warn("live sst fetch failed, using geographic model",
			"error", err,
			"lat", coord.Latitude,
			"lon", coord.Longitude,
		)
		r.metrics.SSTFallbacks.Inc()
		return domain.ModelReading(coord)
	}

	reading := domain.TemperatureReading{
		Celsius:    celsius,
		Live:       true,
		Source:     domain.SourceSatellite,
		ObservedAt: r.clock.Now().UTC(),
	}

	// Only live successes are cached, so a transient outage can recover
	// before the TTL window ends.
	r.cache.put(key, reading)
	return reading
}

func cacheKey(coord domain.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f", coord.Latitude, coord.Longitude)
}
