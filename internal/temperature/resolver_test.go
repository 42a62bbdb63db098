package temperature

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/observability"
)

type stubFetcher struct {
	calls   int
	celsius float64
	err     error
}

func (s *stubFetcher) FetchSST(_ context.Context, _ domain.Coordinate) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.celsius, nil
}

var mersin = domain.Coordinate{Latitude: 36.8, Longitude: 34.6}

func testResolver(live SSTFetcher, clk clockwork.Clock) *Resolver {
	return NewResolver(live, time.Hour, 10, clk,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolver_ModelPathWhenLiveNotRequested(t *testing.T) {
	fetcher := &stubFetcher{celsius: 28.3}
	r := testResolver(fetcher, nil)

	got := r.Resolve(context.Background(), mersin, false)

	assert.False(t, got.Live)
	assert.Equal(t, domain.SourceModel, got.Source)
	assert.Equal(t, 0, fetcher.calls, "model path must never touch the network")
}

func TestResolver_ModelPathWhenNoLiveSource(t *testing.T) {
	r := testResolver(nil, nil)

	got := r.Resolve(context.Background(), mersin, true)

	assert.False(t, got.Live)
	assert.Equal(t, domain.SourceModel, got.Source)
}

func TestResolver_LiveSuccess(t *testing.T) {
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	clk := clockwork.NewFakeClockAt(now)
	fetcher := &stubFetcher{celsius: 28.3}
	r := testResolver(fetcher, clk)

	got := r.Resolve(context.Background(), mersin, true)

	assert.True(t, got.Live)
	assert.Equal(t, domain.SourceSatellite, got.Source)
	assert.Equal(t, 28.3, got.Celsius)
	assert.Equal(t, now, got.ObservedAt)
}

func TestResolver_LiveResultsCachedWithinTTL(t *testing.T) {
	clk := clockwork.NewFakeClock()
	fetcher := &stubFetcher{celsius: 28.3}
	r := testResolver(fetcher, clk)

	first := r.Resolve(context.Background(), mersin, true)
	second := r.Resolve(context.Background(), mersin, true)

	assert.Equal(t, 1, fetcher.calls, "second resolve must come from the cache")
	assert.Equal(t, first, second)

	clk.Advance(61 * time.Minute)
	r.Resolve(context.Background(), mersin, true)
	assert.Equal(t, 2, fetcher.calls, "expired entry triggers a fresh fetch")
}

func TestResolver_DistinctCoordinatesMiss(t *testing.T) {
	fetcher := &stubFetcher{celsius: 25.0}
	r := testResolver(fetcher, clockwork.NewFakeClock())

	r.Resolve(context.Background(), mersin, true)
	r.Resolve(context.Background(), domain.Coordinate{Latitude: 38.4, Longitude: 26.1}, true)

	assert.Equal(t, 2, fetcher.calls)
}

func TestResolver_LiveFailureFallsBackToModel(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	fetcher := &stubFetcher{err: errors.New("connection refused")}
	r := testResolver(fetcher, clockwork.NewFakeClock())

	got := r.Resolve(context.Background(), mersin, true)

	require.False(t, got.Live, "failure path is observable via provenance, not an error")
	assert.Equal(t, domain.SourceModel, got.Source)
	assert.Equal(t, domain.FallbackTemperature(mersin.Latitude, time.August), got.Celsius)
}

func TestResolver_FailuresAreNotCached(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("boom")}
	r := testResolver(fetcher, clockwork.NewFakeClock())

	r.Resolve(context.Background(), mersin, true)
	r.Resolve(context.Background(), mersin, true)

	assert.Equal(t, 2, fetcher.calls, "a transient outage must be retried on the next request")
}
