// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// entry represents a cached item with expiration.
type entry struct {
	value      []byte
	expiration time.Time
}

// expired returns true if the entry has expired.
func (e *entry) expired() bool {
	return time.Now().After(e.expiration)
}

// MemoryCache is an in-memory cache implementation using sync.Map.
// Safe for concurrent use. A background goroutine evicts expired
// entries; Close stops it.
type MemoryCache struct {
	data       sync.Map
	defaultTTL time.Duration
	maxItems   int

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
	items  atomic.Int64

	stopCleanup chan struct{}
	closeOnce   sync.Once
	closed      atomic.Bool
}

// MemoryConfig holds configuration for the in-memory cache.
type MemoryConfig struct {
	DefaultTTL      time.Duration
	MaxItems        int
	CleanupInterval time.Duration
}

// DefaultMemoryConfig returns sensible defaults for the admin console.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		DefaultTTL:      5 * time.Minute,
		MaxItems:        10000,
		CleanupInterval: time.Minute,
	}
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache(cfg MemoryConfig) *MemoryCache {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 5 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}

	c := &MemoryCache{
		defaultTTL:  cfg.DefaultTTL,
		maxItems:    cfg.MaxItems,
		stopCleanup: make(chan struct{}),
	}

	go c.cleanupLoop(cfg.CleanupInterval)

	return c
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}

	v, ok := c.data.Load(key)
	if !ok {
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}

	e := v.(*entry)
	if e.expired() {
		c.data.Delete(key)
		c.items.Add(-1)
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}

	c.hits.Add(1)
	return e.value, nil
}

// Set stores a value with the specified TTL.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	// Best-effort cap: refuse new keys when full rather than evicting,
	// expired entries free slots on the next cleanup pass.
	if c.maxItems > 0 && int(c.items.Load()) >= c.maxItems {
		if _, exists := c.data.Load(key); !exists {
			return nil
		}
	}

	e := &entry{
		value:      value,
		expiration: time.Now().Add(ttl),
	}

	if _, existed := c.data.Swap(key, e); !existed {
		c.items.Add(1)
	}
	c.sets.Add(1)

	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	if _, existed := c.data.LoadAndDelete(key); existed {
		c.items.Add(-1)
	}
	return nil
}

// DeleteByPrefix removes every key starting with the given prefix.
func (c *MemoryCache) DeleteByPrefix(_ context.Context, prefix string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	c.data.Range(func(k, _ any) bool {
		key := k.(string)
		if strings.HasPrefix(key, prefix) {
			if _, existed := c.data.LoadAndDelete(key); existed {
				c.items.Add(-1)
			}
		}
		return true
	})
	return nil
}

// Clear removes all entries from the cache.
func (c *MemoryCache) Clear(_ context.Context) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}

	c.data.Range(func(k, _ any) bool {
		c.data.Delete(k)
		return true
	})
	c.items.Store(0)
	return nil
}

// Has checks if a key exists and is not expired.
func (c *MemoryCache) Has(_ context.Context, key string) (bool, error) {
	if c.closed.Load() {
		return false, ErrCacheClosed
	}

	v, ok := c.data.Load(key)
	if !ok {
		return false, nil
	}

	e := v.(*entry)
	if e.expired() {
		c.data.Delete(key)
		c.items.Add(-1)
		return false, nil
	}
	return true, nil
}

// Close stops the cleanup goroutine and releases resources.
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.stopCleanup)
	})
	return nil
}

// Stats returns cache statistics.
func (c *MemoryCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Hits:    hits,
		Misses:  misses,
		Sets:    c.sets.Load(),
		Items:   int(c.items.Load()),
		HitRate: hitRate,
	}
}

// ResetStats resets hit/miss/set counters.
func (c *MemoryCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.sets.Store(0)
}

// cleanupLoop periodically removes expired entries.
func (c *MemoryCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCleanup:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *MemoryCache) cleanup() {
	c.data.Range(func(k, v any) bool {
		e := v.(*entry)
		if e.expired() {
			if _, existed := c.data.LoadAndDelete(k); existed {
				c.items.Add(-1)
			}
		}
		return true
	})
}
