// fifo.go: fixed-capacity first-in-first-out presence cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// fifoCache is the default RecencyCache implementation: a presence set with
// first-in-first-out eviction. The order queue holds exactly the present
// keys in insertion order, so a removed and re-inserted key queues at the
// back like any other fresh insertion.
//
// The zero value is not usable; construct with newFIFOCache.
type fifoCache[K comparable] struct {
	capacity int
	present  map[K]struct{}
	order    []K
}

// newFIFOCache creates a presence cache holding at most capacity keys.
// Capacities below the engine minimum are clamped, never rejected: recency
// tracking degrades gracefully, it does not fail.
func newFIFOCache[K comparable](capacity int) *fifoCache[K] {
	if capacity < minRecencyCapacity {
		capacity = minRecencyCapacity
	}
	return &fifoCache[K]{
		capacity: capacity,
		present:  make(map[K]struct{}, capacity),
		order:    make([]K, 0, capacity),
	}
}

// Contains reports whether key is currently in the cache.
func (c *fifoCache[K]) Contains(key K) bool {
	_, ok := c.present[key]
	return ok
}

// Insert adds key, evicting the oldest present key when at capacity.
// Inserting a key that is already present does not requeue it.
func (c *fifoCache[K]) Insert(key K) {
	if _, ok := c.present[key]; ok {
		return
	}
	for len(c.present) >= c.capacity {
		c.evictOldest()
	}
	c.present[key] = struct{}{}
	c.order = append(c.order, key)
}

// Remove deletes key from both the presence set and the order queue.
// The linear scan is fine at the small capacities the engine sizes
// caches to.
func (c *fifoCache[K]) Remove(key K) bool {
	if _, ok := c.present[key]; !ok {
		return false
	}
	delete(c.present, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Capacity returns the maximum number of keys the cache can hold.
func (c *fifoCache[K]) Capacity() int {
	return c.capacity
}

// Len returns the number of keys currently present.
func (c *fifoCache[K]) Len() int {
	return len(c.present)
}

// evictOldest drops the key at the front of the order queue.
//
// Invariant: called only while len(present) > 0, and the queue mirrors the
// presence set, so the front entry is always a present key.
func (c *fifoCache[K]) evictOldest() {
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.present, oldest)
}
