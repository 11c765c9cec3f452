package connection

import (
	"context"
	"time"

	"github.com/xuenqlve/rediskit/transform"
)

// SetCmd is the immutable argument object for conditional writes. Each
// with-style method returns a modified copy; the zero condition is a plain
// upsert.
type SetCmd struct {
	key        string
	value      string
	expiration time.Duration
	nx         bool
	xx         bool
}

// SetValue starts a SetCmd for the given pair.
func SetValue(key, value string) SetCmd {
	return SetCmd{key: key, value: value}
}

// Expiring sets a relative expiration on the written key.
func (s SetCmd) Expiring(d time.Duration) SetCmd {
	s.expiration = d
	return s
}

// NX only writes when the key does not exist yet.
func (s SetCmd) NX() SetCmd {
	s.nx = true
	s.xx = false
	return s
}

// XX only writes when the key already exists.
func (s SetCmd) XX() SetCmd {
	s.xx = true
	s.nx = false
	return s
}

// String commands.

// Set writes key to value with an optional expiration (0 keeps the key
// forever). The bool reports whether the write was applied.
func (c *Conn) Set(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	status, err := c.client.Set(ctx, key, value, expiration).Result()
	if err != nil {
		return false, err
	}
	return transform.StatusToBool(status), nil
}

// SetWith executes a conditional SetCmd. A failed NX/XX condition reports
// false without an error.
func (c *Conn) SetWith(ctx context.Context, cmd SetCmd) (bool, error) {
	switch {
	case cmd.nx:
		return c.client.SetNX(ctx, cmd.key, cmd.value, cmd.expiration).Result()
	case cmd.xx:
		return c.client.SetXX(ctx, cmd.key, cmd.value, cmd.expiration).Result()
	default:
		return c.Set(ctx, cmd.key, cmd.value, cmd.expiration)
	}
}

func (c *Conn) SetNX(ctx context.Context, key, value string) (bool, error) {
	return c.client.SetNX(ctx, key, value, 0).Result()
}

// SetEX writes with a mandatory expiration in whole seconds.
func (c *Conn) SetEX(ctx context.Context, key, value string, seconds int64) (bool, error) {
	return c.Set(ctx, key, value, transform.SecondsToDuration(seconds))
}

// PSetEX writes with a mandatory expiration in milliseconds.
func (c *Conn) PSetEX(ctx context.Context, key, value string, millis int64) (bool, error) {
	return c.Set(ctx, key, value, time.Duration(millis)*time.Millisecond)
}

// Get returns the value at key, or Nil when the key is missing.
func (c *Conn) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// GetSet writes the new value and returns the previous one (Nil when the
// key was absent).
func (c *Conn) GetSet(ctx context.Context, key, value string) (string, error) {
	return c.client.GetSet(ctx, key, value).Result()
}

// MGet returns the values for all keys; missing keys yield nil entries.
func (c *Conn) MGet(ctx context.Context, keys ...string) ([]any, error) {
	return c.client.MGet(ctx, keys...).Result()
}

func (c *Conn) MSet(ctx context.Context, pairs map[string]string) (bool, error) {
	args := make([]any, 0, len(pairs)*2)
	for k, v := range pairs {
		args = append(args, k, v)
	}
	status, err := c.client.MSet(ctx, args...).Result()
	if err != nil {
		return false, err
	}
	return transform.StatusToBool(status), nil
}

// MSetNX writes all pairs only when none of the keys exist yet.
func (c *Conn) MSetNX(ctx context.Context, pairs map[string]string) (bool, error) {
	args := make([]any, 0, len(pairs)*2)
	for k, v := range pairs {
		args = append(args, k, v)
	}
	return c.client.MSetNX(ctx, args...).Result()
}

func (c *Conn) Append(ctx context.Context, key, value string) (int64, error) {
	return c.client.Append(ctx, key, value).Result()
}

func (c *Conn) GetRange(ctx context.Context, key string, start, end int64) (string, error) {
	return c.client.GetRange(ctx, key, start, end).Result()
}

func (c *Conn) SetRange(ctx context.Context, key string, offset int64, value string) (int64, error) {
	return c.client.SetRange(ctx, key, offset, value).Result()
}

func (c *Conn) StrLen(ctx context.Context, key string) (int64, error) {
	return c.client.StrLen(ctx, key).Result()
}

// Numeric commands.

func (c *Conn) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

func (c *Conn) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.client.IncrBy(ctx, key, value).Result()
}

func (c *Conn) IncrByFloat(ctx context.Context, key string, value float64) (float64, error) {
	return c.client.IncrByFloat(ctx, key, value).Result()
}

func (c *Conn) Decr(ctx context.Context, key string) (int64, error) {
	return c.client.Decr(ctx, key).Result()
}

func (c *Conn) DecrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.client.DecrBy(ctx, key, value).Result()
}
