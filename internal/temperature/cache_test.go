package temperature

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
)

func reading(celsius float64) domain.TemperatureReading {
	return domain.TemperatureReading{Celsius: celsius, Live: true, Source: domain.SourceSatellite}
}

func TestReadingCache_GetPut(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := newReadingCache(time.Hour, 10, clk)

	c.put("a", reading(28.3))

	got, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, 28.3, got.Celsius)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestReadingCache_TTLExpiry(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := newReadingCache(time.Hour, 10, clk)

	c.put("a", reading(28.3))

	clk.Advance(59 * time.Minute)
	_, ok := c.get("a")
	assert.True(t, ok, "entry still fresh before the TTL")

	clk.Advance(time.Minute)
	_, ok = c.get("a")
	assert.False(t, ok, "entry expired at the TTL boundary")
}

func TestReadingCache_OverwriteRefreshesTTL(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := newReadingCache(time.Hour, 10, clk)

	c.put("a", reading(28.3))
	clk.Advance(45 * time.Minute)
	c.put("a", reading(29.0))

	clk.Advance(30 * time.Minute)
	got, ok := c.get("a")
	assert.True(t, ok, "overwrite restarts the TTL window")
	assert.Equal(t, 29.0, got.Celsius)
}

func TestReadingCache_CapacityEvictsOldest(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := newReadingCache(time.Hour, 2, clk)

	c.put("a", reading(20))
	clk.Advance(time.Minute)
	c.put("b", reading(21))
	clk.Advance(time.Minute)
	c.put("c", reading(22))

	_, ok := c.get("a")
	assert.False(t, ok, "oldest entry evicted at capacity")

	_, ok = c.get("b")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestReadingCache_PurgesExpiredBeforeEvicting(t *testing.T) {
	clk := clockwork.NewFakeClock()
	c := newReadingCache(30*time.Minute, 2, clk)

	c.put("a", reading(20))
	c.put("b", reading(21))

	// Both entries are dead by now; inserting must reclaim their slots
	// rather than evicting anything live.
	clk.Advance(31 * time.Minute)
	c.put("c", reading(22))

	_, ok := c.get("c")
	assert.True(t, ok)
	assert.Len(t, c.entries, 1)
}
