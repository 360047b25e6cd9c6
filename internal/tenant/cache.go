package tenant

import (
	"context"
	"sync"
	"time"

	"github.com/Davidi18/wordpress-mcp/internal/metrics"
)

// DefaultTTL bounds how stale the cached client list may get.
const DefaultTTL = 5 * time.Minute

// Lister is the slice of Store the cache depends on.
type Lister interface {
	List(ctx context.Context) ([]Record, error)
}

// Cache is a TTL cache over the clients table. A fresh snapshot is served
// until the TTL elapses; the next call after expiry refetches. Refresh
// failures return the error rather than stale data, so callers can fall back
// to the environment source. Concurrent callers may race into redundant
// refreshes; the list read is idempotent and cheap, so they are not
// serialized beyond the snapshot mutex.
type Cache struct {
	store Lister
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	snapshot  []Record
	fetchedAt time.Time
}

// NewCache builds a cache with the given TTL. A nil clock defaults to
// time.Now; tests inject a fake.
func NewCache(store Lister, ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{store: store, ttl: ttl, now: now}
}

// Get returns the cached snapshot while fresh, refetching after expiry.
func (c *Cache) Get(ctx context.Context) ([]Record, error) {
	c.mu.Lock()
	// fetchedAt, not the slice, marks population: List returns a nil slice
	// for an empty table, and an empty snapshot is still a valid one.
	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		snap := c.snapshot
		c.mu.Unlock()
		metrics.ClientCacheHits.Inc()
		return snap, nil
	}
	c.mu.Unlock()

	records, err := c.store.List(ctx)
	if err != nil {
		metrics.ClientCacheRefreshes.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ClientCacheRefreshes.WithLabelValues("success").Inc()

	c.mu.Lock()
	c.snapshot = records
	c.fetchedAt = c.now()
	c.mu.Unlock()
	return records, nil
}

// Invalidate drops the snapshot unconditionally, forcing the next Get to hit
// the store.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
