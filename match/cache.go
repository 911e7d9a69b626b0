// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultCacheSize bounds the number of cached query results.
	DefaultCacheSize = 100

	// DefaultCacheTTL is the lifetime of a cached result.
	DefaultCacheTTL = 5 * time.Minute
)

// cacheEntry is one memoized query result.
type cacheEntry struct {
	key        uint64
	value      *Result
	insertedAt time.Time
}

// QueryCache is a bounded, TTL-expiring memo of query hash to match result.
// Get promotes hits to most-recently-used; Set evicts the least-recently-used
// entry at capacity. Safe for concurrent use.
type QueryCache struct {
	mu       sync.Mutex
	maxSize  int
	ttl      time.Duration
	entries  map[uint64]*list.Element
	eviction *list.List // front = most recently used

	// now is replaceable in tests to control expiry.
	now func() time.Time
}

// NewQueryCache creates a cache holding at most maxSize entries, each
// expiring ttl after insertion. Non-positive arguments fall back to the
// defaults.
func NewQueryCache(maxSize int, ttl time.Duration) *QueryCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &QueryCache{
		maxSize:  maxSize,
		ttl:      ttl,
		entries:  make(map[uint64]*list.Element, maxSize),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Get returns the cached result for key, promoting it to most-recently-used.
// Expired entries are evicted and reported as misses.
func (c *QueryCache) Get(key uint64) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().Sub(entry.insertedAt) >= c.ttl {
		c.removeLocked(elem)
		return nil, false
	}

	c.eviction.MoveToFront(elem)
	return entry.value, true
}

// Set stores value under key, evicting the least-recently-used entry when at
// capacity. Setting an existing key refreshes its value and insertion time.
func (c *QueryCache) Set(key uint64, value *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.value = value
		entry.insertedAt = c.now()
		c.eviction.MoveToFront(elem)
		return
	}

	if c.eviction.Len() >= c.maxSize {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeLocked(oldest)
		}
	}

	elem := c.eviction.PushFront(&cacheEntry{
		key:        key,
		value:      value,
		insertedAt: c.now(),
	})
	c.entries[key] = elem
}

// Clear wipes all entries. Must be called whenever the underlying document
// collection changes.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*list.Element, c.maxSize)
	c.eviction.Init()
}

// Len returns the current number of cached entries.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Utilization returns the fill fraction in [0,1].
func (c *QueryCache) Utilization() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.eviction.Len()) / float64(c.maxSize)
}

func (c *QueryCache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.entries, entry.key)
	c.eviction.Remove(elem)
}
