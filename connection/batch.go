package connection

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xuenqlve/rediskit/zrange"
)

// Batch queues commands and sends them in one round trip on Exec. Queued
// calls return driver command handles whose results become readable after
// Exec. A Batch is not safe for concurrent use.
type Batch struct {
	pipe redis.Pipeliner
}

func (c *Conn) NewBatch() *Batch {
	return &Batch{pipe: c.client.Pipeline()}
}

func (b *Batch) Set(ctx context.Context, key, value string, expiration time.Duration) *redis.StatusCmd {
	return b.pipe.Set(ctx, key, value, expiration)
}

func (b *Batch) Get(ctx context.Context, key string) *redis.StringCmd {
	return b.pipe.Get(ctx, key)
}

func (b *Batch) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return b.pipe.Del(ctx, keys...)
}

func (b *Batch) Incr(ctx context.Context, key string) *redis.IntCmd {
	return b.pipe.Incr(ctx, key)
}

func (b *Batch) ZAdd(ctx context.Context, key string, members ...Member) *redis.IntCmd {
	return b.pipe.ZAdd(ctx, key, toZ(members)...)
}

func (b *Batch) ZRangeByScore(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) *redis.StringSliceCmd {
	return b.pipe.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min:    r.MinToken(),
		Max:    r.MaxToken(),
		Offset: limit.Offset,
		Count:  limit.Count,
	})
}

// Len reports how many commands are queued.
func (b *Batch) Len() int {
	return b.pipe.Len()
}

// Exec flushes the queue. The first command error is returned; Nil replies
// inside the batch do not fail the whole execution.
func (b *Batch) Exec(ctx context.Context) error {
	_, err := b.pipe.Exec(ctx)
	if err == Nil {
		return nil
	}
	return err
}

// Discard drops all queued commands.
func (b *Batch) Discard() {
	b.pipe.Discard()
}
