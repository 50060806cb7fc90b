// Package session provides an explicit, TTL-bounded cache for expensive
// external fetches within one session. The cache is passed into the
// pipeline by reference rather than held as ambient global state, and the
// large league-wide player table in particular is fetched at most once per
// session through it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dynastydash/dynastydash/pkg/constants"
)

// Well-known cache keys for the session-scoped external fetches.
const (
	// PlayersKey caches the league-wide player-ID to name table.
	PlayersKey = "players"
	// RankingsKey caches the scraped valuation list.
	RankingsKey = "rankings"
)

// Cache is a small TTL cache for per-session fetch results. Safe for
// concurrent use, though the pipeline itself runs synchronously.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	value   any
	fetched time.Time
}

// New creates a cache whose entries expire after ttl. A non-positive ttl
// falls back to the default session TTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = constants.SessionCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// get returns a live entry, expiring it on read when stale.
func (c *Cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetched) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// set stores a value under key with the current time.
func (c *Cache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetched: c.now()}
}

// Invalidate drops a single entry, forcing the next Fetch to refetch.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Fetch returns the cached value for key, calling fn to populate it on a
// miss or after expiry. Fetch errors are returned without caching.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	if c != nil {
		if v, ok := c.get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	value, err := fn(ctx)
	if err != nil {
		return value, err
	}
	if c != nil {
		c.set(key, value)
	}
	return value, nil
}
