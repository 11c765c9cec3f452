package connection

import (
	"context"
	"time"

	"github.com/xuenqlve/rediskit/transform"
)

// Key commands: generic operations on keys of any type.

// Exists reports how many of the given keys exist.
func (c *Conn) Exists(ctx context.Context, keys ...string) (int64, error) {
	return c.client.Exists(ctx, keys...).Result()
}

// Type reports the value type stored at key ("string", "zset", ...).
func (c *Conn) Type(ctx context.Context, key string) (string, error) {
	return c.client.Type(ctx, key).Result()
}

// Del removes a single key and reports whether it existed.
func (c *Conn) Del(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Del(ctx, key).Result()
	return n > 0, err
}

// MDel removes all given keys and reports how many were removed.
func (c *Conn) MDel(ctx context.Context, keys []string) (int64, error) {
	return c.client.Del(ctx, keys...).Result()
}

// Keys returns all keys matching pattern. Prefer ScanKeys on large datasets.
func (c *Conn) Keys(ctx context.Context, pattern string) ([]string, error) {
	return c.client.Keys(ctx, pattern).Result()
}

// RandomKey returns a random key, or Nil on an empty database.
func (c *Conn) RandomKey(ctx context.Context) (string, error) {
	return c.client.RandomKey(ctx).Result()
}

func (c *Conn) Rename(ctx context.Context, key, newKey string) (bool, error) {
	status, err := c.client.Rename(ctx, key, newKey).Result()
	if err != nil {
		return false, err
	}
	return transform.StatusToBool(status), nil
}

func (c *Conn) RenameNX(ctx context.Context, key, newKey string) (bool, error) {
	return c.client.RenameNX(ctx, key, newKey).Result()
}

// TTL reports the remaining time to live in whole seconds: -1 when the key
// has no expiration, -2 when it does not exist.
func (c *Conn) TTL(ctx context.Context, key string) (int64, error) {
	d, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return int64(d), nil
	}
	return transform.DurationToSeconds(d), nil
}

func (c *Conn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, ttl).Result()
}

func (c *Conn) Persist(ctx context.Context, key string) (bool, error) {
	return c.client.Persist(ctx, key).Result()
}
