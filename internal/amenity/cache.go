package amenity

import (
	"sync"

	"github.com/google/uuid"

	"github.com/haikapp/haik/internal/models"
)

// CountCache memoizes (neighborhood, category) counts for one
// recommendation-flow instance. Entries are never overwritten or
// invalidated within a session; the first stored value wins, so
// out-of-order completion of concurrent lookups cannot produce
// inconsistent results.
type CountCache struct {
	mu     sync.Mutex
	counts map[uuid.UUID]map[models.Category]int
}

// NewCountCache returns an empty cache.
func NewCountCache() *CountCache {
	return &CountCache{counts: make(map[uuid.UUID]map[models.Category]int)}
}

// Get returns the cached count for a pair, if present.
func (c *CountCache) Get(neighborhoodID uuid.UUID, cat models.Category) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	per, ok := c.counts[neighborhoodID]
	if !ok {
		return 0, false
	}
	v, ok := per[cat]
	return v, ok
}

// PutIfAbsent stores a count unless the pair is already cached, and
// returns the value that ended up in the cache.
func (c *CountCache) PutIfAbsent(neighborhoodID uuid.UUID, cat models.Category, count int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	per, ok := c.counts[neighborhoodID]
	if !ok {
		per = make(map[models.Category]int)
		c.counts[neighborhoodID] = per
	}
	if existing, ok := per[cat]; ok {
		return existing
	}
	per[cat] = count
	return count
}

// Count returns the cached count for a pair, defaulting to zero when
// the pair was never fetched. The scorer reads through this: an
// unfetched category is "no evidence", not an error.
func (c *CountCache) Count(neighborhoodID uuid.UUID, cat models.Category) int {
	v, _ := c.Get(neighborhoodID, cat)
	return v
}

// Snapshot returns a copy of the cached counts for the given
// neighborhoods.
func (c *CountCache) Snapshot(neighborhoods []models.Neighborhood) map[uuid.UUID]map[models.Category]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[uuid.UUID]map[models.Category]int, len(neighborhoods))
	for _, n := range neighborhoods {
		per, ok := c.counts[n.ID]
		if !ok {
			continue
		}
		cp := make(map[models.Category]int, len(per))
		for k, v := range per {
			cp[k] = v
		}
		out[n.ID] = cp
	}
	return out
}
