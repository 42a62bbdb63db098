package temperature

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/elitsofrasalonu2121-coder/Stef-Global-Pro/internal/domain"
)

// readingCache is a thread-safe TTL cache of whole temperature readings,
// keyed by coordinate. Entries are written atomically as complete readings,
// so readers never observe a partial update.
type readingCache struct {
	ttl        time.Duration
	maxEntries int
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	reading   domain.TemperatureReading
	expiresAt time.Time
}

func newReadingCache(ttl time.Duration, maxEntries int, clk clockwork.Clock) *readingCache {
	return &readingCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clk,
		entries:    make(map[string]cacheEntry),
	}
}

func (c *readingCache) get(key string) (domain.TemperatureReading, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.TemperatureReading{}, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		return domain.TemperatureReading{}, false
	}
	return e.reading, true
}

func (c *readingCache) put(key string, reading domain.TemperatureReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.purgeExpired(now)

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	c.entries[key] = cacheEntry{reading: reading, expiresAt: now.Add(c.ttl)}
}

// purgeExpired drops dead entries opportunistically on every write.
func (c *readingCache) purgeExpired(now time.Time) {
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// evictOldest removes the entry closest to expiry to make room at capacity.
func (c *readingCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
