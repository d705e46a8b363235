package hashing

import (
	"sync"
)

// cacheKey identifies a subtree: the position key and the remaining depth.
type cacheKey struct {
	position uint64
	depth    int
}

// NodeCache stores perft node counts per (position, depth) with mutex
// protection, so parallel perft workers can share one cache.
type NodeCache struct {
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        uint64
	misses      uint64
	mu          sync.RWMutex
}

// NewNodeCache creates a new cache.
// maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for the position at the given depth.
func (c *NodeCache) Lookup(position uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.entries[cacheKey{position, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records the node count for the position at the given depth.
// Once the cache is full, new entries are dropped.
func (c *NodeCache) Store(position uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := cacheKey{position, depth}
	if _, ok := c.entries[k]; !ok && c.isFullLocked() {
		return
	}
	c.entries[k] = nodes
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the number of lookup hits and misses so far.
func (c *NodeCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFullLocked()
}

func (c *NodeCache) isFullLocked() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears the cache and its statistics.
func (c *NodeCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]uint64)
	c.hits, c.misses = 0, 0
}
