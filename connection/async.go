package connection

import (
	"context"
	"time"

	"github.com/xuenqlve/rediskit/zrange"
)

// Result carries one asynchronous reply: the value or the error, never both.
type Result[T any] struct {
	Val T
	Err error
}

// dispatch runs fn off the caller's goroutine and delivers its outcome on a
// buffered channel, so an abandoned result never leaks the worker.
func dispatch[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		val, err := fn()
		ch <- Result[T]{Val: val, Err: err}
		close(ch)
	}()
	return ch
}

func (c *Conn) AsyncGet(ctx context.Context, key string) <-chan Result[string] {
	return dispatch(func() (string, error) {
		return c.Get(ctx, key)
	})
}

func (c *Conn) AsyncSet(ctx context.Context, key, value string, expiration time.Duration) <-chan Result[bool] {
	return dispatch(func() (bool, error) {
		return c.Set(ctx, key, value, expiration)
	})
}

func (c *Conn) AsyncDel(ctx context.Context, keys []string) <-chan Result[int64] {
	return dispatch(func() (int64, error) {
		return c.MDel(ctx, keys)
	})
}

func (c *Conn) AsyncZAdd(ctx context.Context, key string, members ...Member) <-chan Result[int64] {
	return dispatch(func() (int64, error) {
		return c.ZAdd(ctx, key, members...)
	})
}

func (c *Conn) AsyncZRangeByScore(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) <-chan Result[[]string] {
	return dispatch(func() ([]string, error) {
		return c.ZRangeByScore(ctx, key, r, limit)
	})
}
