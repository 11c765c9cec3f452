package connection

import (
	"context"
	"time"

	"github.com/xuenqlve/rediskit/cache"
)

// CachedConn is an opt-in read-through wrapper: Get and MGet consult a local
// TTL cache first, and writes going through the wrapper invalidate it.
// Writes done elsewhere stay invisible until the cached entry expires.
type CachedConn struct {
	*Conn
	cache *cache.Cache
}

// NewCached wraps conn with a local cache whose entries live for ttl.
func NewCached(conn *Conn, ttl, cleanupInterval time.Duration) *CachedConn {
	return &CachedConn{
		Conn:  conn,
		cache: cache.NewCache(ttl, cleanupInterval),
	}
}

func (c *CachedConn) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.cache.Get(key); ok {
		return value, nil
	}
	value, err := c.Conn.Get(ctx, key)
	if err != nil {
		return "", err
	}
	c.cache.Set(key, value, cache.DefaultExpiration)
	return value, nil
}

func (c *CachedConn) MGet(ctx context.Context, keys ...string) ([]any, error) {
	values := make([]any, len(keys))
	missing := make([]string, 0, len(keys))
	missingIdx := make([]int, 0, len(keys))
	for i, key := range keys {
		if value, ok := c.cache.Get(key); ok {
			values[i] = value
		} else {
			missing = append(missing, key)
			missingIdx = append(missingIdx, i)
		}
	}
	if len(missing) == 0 {
		return values, nil
	}

	fetched, err := c.Conn.MGet(ctx, missing...)
	if err != nil {
		return nil, err
	}
	for i, value := range fetched {
		values[missingIdx[i]] = value
		if s, ok := value.(string); ok {
			c.cache.Set(missing[i], s, cache.DefaultExpiration)
		}
	}
	return values, nil
}

func (c *CachedConn) Set(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	ok, err := c.Conn.Set(ctx, key, value, expiration)
	if err == nil {
		c.cache.Delete(key)
	}
	return ok, err
}

func (c *CachedConn) Del(ctx context.Context, key string) (bool, error) {
	ok, err := c.Conn.Del(ctx, key)
	if err == nil {
		c.cache.Delete(key)
	}
	return ok, err
}

func (c *CachedConn) MDel(ctx context.Context, keys []string) (int64, error) {
	n, err := c.Conn.MDel(ctx, keys)
	if err == nil {
		for _, key := range keys {
			c.cache.Delete(key)
		}
	}
	return n, err
}

func (c *CachedConn) Close() error {
	c.cache.Close()
	return c.Conn.Close()
}
