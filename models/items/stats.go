package items

import (
	"sync"
	"time"

	"go-catalog/objects"
)

// StatsCache memoizes the collection aggregate behind a single entry.
// The entry is valid as long as the store file's modification timestamp
// matches the one observed when the entry was filled; a newer timestamp
// marks it stale and the next call recomputes. The cache lives in process
// memory only.
type StatsCache struct {
	store Store

	mu         sync.Mutex
	value      objects.Stats
	observedAt time.Time
	filled     bool
}

func NewStatsCache(store Store) *StatsCache {
	return &StatsCache{store: store}
}

// Stats returns the cached aggregate, reading storage only when the file
// changed since the last fill. The average of zero items is 0.
func (c *StatsCache) Stats() (objects.Stats, error) {

	c.mu.Lock()
	defer c.mu.Unlock()

	modTime, err := c.store.ModTime()
	if err != nil {
		return objects.Stats{}, err
	}

	if c.filled && modTime.Equal(c.observedAt) {
		return c.value, nil
	}

	collection, err := c.store.List()
	if err != nil {
		c.filled = false
		return objects.Stats{}, err
	}

	stats := objects.Stats{Count: len(collection)}

	if len(collection) > 0 {

		var sum float64
		for _, item := range collection {
			sum += item.Price
		}

		stats.AveragePrice = sum / float64(len(collection))
	}

	c.value = stats
	c.observedAt = modTime
	c.filled = true

	return stats, nil
}
