package rates

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// Cache holds resolved rates for the lifetime of the process, keyed by the
// requested calendar date. Entries are never replaced or evicted.
//
// A date whose search ended in models.ErrRateUnavailable is remembered too, so
// the fallback walk runs once per date. Other failures are not kept.
//
// It is safe for concurrent use: concurrent misses for the same date share a
// single load, so the source sees at most one lookup per date.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]models.ExchangeRate
	misses  map[string]error
	flight  singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]models.ExchangeRate),
		misses:  make(map[string]error),
	}
}

func cacheKey(date time.Time) string {
	return date.Format(models.DateLayout)
}

// Get returns the cached rate for date, if any.
func (c *Cache) Get(date time.Time) (models.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[cacheKey(date)]
	return r, ok
}

// Len returns the number of cached dates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// lookup reports a cached rate or a cached terminal failure for key.
func (c *Cache) lookup(key string) (models.ExchangeRate, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if r, ok := c.entries[key]; ok {
		return r, true, nil
	}
	if err, ok := c.misses[key]; ok {
		return models.ExchangeRate{}, true, err
	}
	return models.ExchangeRate{}, false, nil
}

// GetOrLoad returns the cached rate for date or runs load once to fill it.
// A load failing with models.ErrRateUnavailable is cached and returned again
// for that date; any other failure is not cached and the next call loads again.
func (c *Cache) GetOrLoad(date time.Time, load func() (models.ExchangeRate, error)) (models.ExchangeRate, error) {
	key := cacheKey(date)
	if r, ok, err := c.lookup(key); ok {
		return r, err
	}

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// A caller that lost the race to a finished flight finds the entry here.
		if r, ok, err := c.lookup(key); ok {
			return r, err
		}
		r, err := load()
		if errors.Is(err, models.ErrRateUnavailable) {
			c.mu.Lock()
			c.misses[key] = err
			c.mu.Unlock()
			return nil, err
		}
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = r
		c.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return models.ExchangeRate{}, err
	}
	return v.(models.ExchangeRate), nil
}
