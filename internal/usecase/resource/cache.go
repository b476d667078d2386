// Package resource holds the generic list/edit/sync machinery shared by the
// product and order services: a cache of the last fetched collection and a
// coordinator that reconciles it after every write.
package resource

import (
	"context"
	"sync"
	"time"
)

// ListFunc fetches the full collection of one resource type.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// Snapshot is a point-in-time view of a Cache.
type Snapshot[T any] struct {
	Items     []T
	Loaded    bool
	FetchedAt time.Time
	Version   uint64
	Err       error // last load error, nil after a successful load
}

// Cache holds the last successfully fetched collection of one resource.
// Load replaces the collection wholesale; nothing else writes it.
type Cache[T any] struct {
	mu        sync.RWMutex
	name      string
	list      ListFunc[T]
	items     []T
	loaded    bool
	fetchedAt time.Time
	version   uint64
	lastErr   error

	issued     uint64 // sequence handed to the most recently started load
	committed  uint64 // sequence of the load whose result is held
	generation uint64 // incremented on Clear, used to discard in-flight loads
}

// NewCache creates an empty cache named after the resource it holds.
func NewCache[T any](name string, list ListFunc[T]) *Cache[T] {
	return &Cache[T]{name: name, list: list}
}

// Name returns the resource name used in errors.
func (c *Cache[T]) Name() string { return c.name }

// Load issues one list call. On success the held collection is replaced,
// unless a load started later has already committed or the cache was
// cleared meanwhile; the newer collection is returned in that case. On
// failure the collection is left untouched and a *FetchError is returned.
func (c *Cache[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	c.issued++
	seq, gen := c.issued, c.generation
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	current := gen == c.generation && seq > c.committed

	if err != nil {
		fetchErr := &FetchError{Resource: c.name, Err: err}
		if current {
			c.lastErr = fetchErr
		}
		return nil, fetchErr
	}
	if !current {
		return clone(c.items), nil
	}

	fresh := make([]T, len(items))
	copy(fresh, items)
	c.items = fresh
	c.loaded = true
	c.fetchedAt = time.Now()
	c.version++
	c.committed = seq
	c.lastErr = nil

	return clone(fresh), nil
}

// Current returns a copy of the last successfully loaded collection.
func (c *Cache[T]) Current() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.items)
}

// Snapshot returns the collection together with its load metadata.
func (c *Cache[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot[T]{
		Items:     clone(c.items),
		Loaded:    c.loaded,
		FetchedAt: c.fetchedAt,
		Version:   c.version,
		Err:       c.lastErr,
	}
}

// Version increments on every successful load.
func (c *Cache[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Clear drops the collection and returns the cache to its initial state.
// Loads still in flight are discarded when they finish.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.committed = c.issued
	c.items = nil
	c.loaded = false
	c.fetchedAt = time.Time{}
	c.lastErr = nil
}

func clone[T any](items []T) []T {
	cp := make([]T, len(items))
	copy(cp, items)
	return cp
}
