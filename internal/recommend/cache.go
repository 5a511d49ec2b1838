package recommend

import (
	"sync"
	"time"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
)

// Cache memoizes recommendation results for a short wall-clock window.
// Recommendations are recomputed on every page render otherwise, and the
// popularity tally walks the whole order history. Invalidate is called by
// the ledger after each placement since that changes the ranking input.
type Cache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	items   []models.MenuItem
	expires time.Time
}

// NewCache creates a cache with the given time-to-live.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// GetOrCompute returns the cached value for key if it has not expired,
// otherwise runs compute and stores the result.
func (c *Cache) GetOrCompute(key string, compute func() []models.MenuItem) []models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && time.Now().Before(e.expires) {
		return e.items
	}

	items := compute()
	c.entries[key] = cacheEntry{
		items:   items,
		expires: time.Now().Add(c.ttl),
	}
	return items
}

// Invalidate drops every cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
