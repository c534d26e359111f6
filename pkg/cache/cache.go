package cache

import (
	"sync"

	"byaura/pkg/logger"
	"byaura/pkg/metrics"
)

// ResourceCache holds the last fetched collection of one backend resource,
// keyed by record ID. List responses replace it wholesale; single-record
// mutations patch it in place.
type ResourceCache[T any] struct {
	name   string
	idOf   func(T) int64
	logger logger.Logger

	mu    sync.RWMutex
	items map[int64]T
}

func New[T any](name string, idOf func(T) int64, log logger.Logger) *ResourceCache[T] {
	return &ResourceCache[T]{
		name:   name,
		idOf:   idOf,
		logger: log,
		items:  make(map[int64]T),
	}
}

// ReplaceAll swaps the entire cache contents for a fresh list response.
func (c *ResourceCache[T]) ReplaceAll(items []T) {
	fresh := make(map[int64]T, len(items))
	for _, item := range items {
		fresh[c.idOf(item)] = item
	}

	c.mu.Lock()
	c.items = fresh
	c.mu.Unlock()

	c.logger.Debug("önbellek yenilendi", map[string]interface{}{
		"resource": c.name,
		"count":    len(items),
	})
}

func (c *ResourceCache[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	item, ok := c.items[id]
	c.mu.RUnlock()

	if ok {
		metrics.RecordCacheHit(c.name)
	} else {
		metrics.RecordCacheMiss(c.name)
	}
	return item, ok
}

func (c *ResourceCache[T]) Upsert(item T) {
	c.mu.Lock()
	c.items[c.idOf(item)] = item
	c.mu.Unlock()
}

func (c *ResourceCache[T]) Remove(id int64) {
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()
}

func (c *ResourceCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a snapshot of the cached records in unspecified order.
func (c *ResourceCache[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	return items
}

func (c *ResourceCache[T]) Clear() {
	c.mu.Lock()
	c.items = make(map[int64]T)
	c.mu.Unlock()
}
