// Package cache implements the refresh-on-write collection cache that
// backs every remote entity type: the latest known full collection is
// held in memory, replaced wholesale after each successful re-fetch,
// and never touched on failure.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newsroom/internal/metrics"
)

// Fetcher retrieves the full remote collection.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Cache holds the latest known collection of T.
//
// Invariants:
//   - Current never performs I/O and never triggers a refresh.
//   - Refresh replaces the collection atomically; a failed refresh
//     leaves the previous collection in place.
//   - Mutate issues exactly one refresh after a successful write and
//     none after a failed one.
type Cache[T any] struct {
	name  string
	fetch Fetcher[T]

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// New creates a cache for the named collection. The name is used for
// metrics and log labels only.
func New[T any](name string, fetch Fetcher[T]) *Cache[T] {
	return &Cache[T]{name: name, fetch: fetch}
}

// Name returns the collection name the cache was created with.
func (c *Cache[T]) Name() string {
	return c.name
}

// Refresh re-fetches the full collection and swaps it in. On error the
// held collection is left untouched.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	start := time.Now()

	items, err := c.fetch(ctx)
	if err != nil {
		metrics.CacheRefreshesTotal.WithLabelValues(c.name, "error").Inc()
		return fmt.Errorf("refresh %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()

	metrics.CacheRefreshesTotal.WithLabelValues(c.name, "success").Inc()
	metrics.CacheRefreshDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(items)))

	return nil
}

// Current returns a copy of the held collection. It is safe to call at
// arbitrary frequency; it never amplifies network calls.
func (c *Cache[T]) Current() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of held items without copying.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Loaded reports whether at least one refresh has succeeded.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Mutate runs a remote write and, if it succeeds, refreshes the cache
// before returning. A failed write leaves the cache untouched and is
// returned as-is; a failed refresh after a successful write is also
// surfaced so the caller knows the cache may be stale.
func (c *Cache[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}
