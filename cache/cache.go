// Package cache holds a small TTL cache for server replies, used by the
// read-through connection wrapper to keep hot keys local.
package cache

import (
	"sync"
	"time"
)

type Cache struct {
	items             map[string]Item
	mu                sync.RWMutex
	defaultExpiration time.Duration
	cleanupInterval   time.Duration
	stopCleanup       chan bool
}

const (
	NoExpiration      time.Duration = -1
	DefaultExpiration time.Duration = 0
)

// NewCache builds a cache. A positive cleanupInterval starts a janitor
// goroutine that evicts expired items; Close stops it.
func NewCache(defaultExpiration, cleanupInterval time.Duration) *Cache {
	cache := &Cache{
		items:             make(map[string]Item),
		defaultExpiration: defaultExpiration,
		cleanupInterval:   cleanupInterval,
		stopCleanup:       make(chan bool),
	}

	if cleanupInterval > 0 {
		go cache.startCleanupTimer()
	}

	return cache
}

func (c *Cache) startCleanupTimer() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.DeleteExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

// Set stores a reply. DefaultExpiration picks the cache default,
// NoExpiration keeps the item until deleted.
func (c *Cache) Set(key, value string, d time.Duration) {
	var exp int64
	if d == DefaultExpiration {
		d = c.defaultExpiration
	}
	if d > 0 {
		exp = time.Now().Add(d).UnixNano()
	}

	c.mu.Lock()
	c.items[key] = Item{
		Value:      value,
		Expiration: exp,
		Created:    time.Now(),
	}
	c.mu.Unlock()
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found {
		return "", false
	}

	if item.Expired() {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", false
	}

	return item.Value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) DeleteExpired() {
	now := time.Now().UnixNano()
	c.mu.Lock()
	for k, v := range c.items {
		if v.Expiration > 0 && now > v.Expiration {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) Close() error {
	if c.cleanupInterval > 0 {
		c.stopCleanup <- true
	}
	return nil
}
