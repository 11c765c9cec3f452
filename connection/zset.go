package connection

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/xuenqlve/rediskit/zrange"
)

// Sorted-set commands. Score and lex intervals travel through the zrange
// encoder, which renders the boundary tokens of the server grammar.

func toZ(members []Member) []redis.Z {
	zs := make([]redis.Z, len(members))
	for i, m := range members {
		zs[i] = redis.Z{Score: m.Score, Member: m.Member}
	}
	return zs
}

func fromZ(zs []redis.Z) []Member {
	members := make([]Member, len(zs))
	for i, z := range zs {
		m, _ := z.Member.(string)
		members[i] = Member{Member: m, Score: z.Score}
	}
	return members
}

// ZAdd upserts members and reports how many were newly added.
func (c *Conn) ZAdd(ctx context.Context, key string, members ...Member) (int64, error) {
	return c.client.ZAdd(ctx, key, toZ(members)...).Result()
}

// ZAddWith executes a ZAddCmd built with ZAddMembers.
func (c *Conn) ZAddWith(ctx context.Context, cmd ZAddCmd) (int64, error) {
	return c.client.ZAddArgs(ctx, cmd.key, redis.ZAddArgs{
		NX:      cmd.nx,
		XX:      cmd.xx,
		Ch:      cmd.ch,
		Members: toZ(cmd.members),
	}).Result()
}

// ZAddIncr increments the first member's score like ZIncrBy, honoring the
// command's NX/XX condition. A skipped conditional write reports Nil.
func (c *Conn) ZAddIncr(ctx context.Context, cmd ZAddCmd) (float64, error) {
	return c.client.ZAddArgsIncr(ctx, cmd.key, redis.ZAddArgs{
		NX:      cmd.nx,
		XX:      cmd.xx,
		Members: toZ(cmd.members),
	}).Result()
}

// ZRem removes members and reports how many were removed.
func (c *Conn) ZRem(ctx context.Context, key string, members ...string) (int64, error) {
	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}
	return c.client.ZRem(ctx, key, args...).Result()
}

func (c *Conn) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	return c.client.ZIncrBy(ctx, key, increment, member).Result()
}

// ZRank reports the ascending index of member, or Nil when absent.
func (c *Conn) ZRank(ctx context.Context, key, member string) (int64, error) {
	return c.client.ZRank(ctx, key, member).Result()
}

// ZRevRank reports the index of member when scored high to low.
func (c *Conn) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	return c.client.ZRevRank(ctx, key, member).Result()
}

func (c *Conn) ZRange(ctx context.Context, key string, r zrange.RankRange) ([]string, error) {
	return c.client.ZRange(ctx, key, r.Start, r.Stop).Result()
}

func (c *Conn) ZRangeWithScores(ctx context.Context, key string, r zrange.RankRange) ([]Member, error) {
	zs, err := c.client.ZRangeWithScores(ctx, key, r.Start, r.Stop).Result()
	if err != nil {
		return nil, err
	}
	return fromZ(zs), nil
}

func (c *Conn) ZRevRange(ctx context.Context, key string, r zrange.RankRange) ([]string, error) {
	return c.client.ZRevRange(ctx, key, r.Start, r.Stop).Result()
}

func (c *Conn) ZRevRangeWithScores(ctx context.Context, key string, r zrange.RankRange) ([]Member, error) {
	zs, err := c.client.ZRevRangeWithScores(ctx, key, r.Start, r.Stop).Result()
	if err != nil {
		return nil, err
	}
	return fromZ(zs), nil
}

func scoreRangeBy(r zrange.ScoreRange, limit Limit) (*redis.ZRangeBy, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &redis.ZRangeBy{
		Min:    r.MinToken(),
		Max:    r.MaxToken(),
		Offset: limit.Offset,
		Count:  limit.Count,
	}, nil
}

func (c *Conn) ZRangeByScore(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) ([]string, error) {
	by, err := scoreRangeBy(r, limit)
	if err != nil {
		return nil, err
	}
	return c.client.ZRangeByScore(ctx, key, by).Result()
}

func (c *Conn) ZRangeByScoreWithScores(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) ([]Member, error) {
	by, err := scoreRangeBy(r, limit)
	if err != nil {
		return nil, err
	}
	zs, err := c.client.ZRangeByScoreWithScores(ctx, key, by).Result()
	if err != nil {
		return nil, err
	}
	return fromZ(zs), nil
}

func (c *Conn) ZRevRangeByScore(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) ([]string, error) {
	by, err := scoreRangeBy(r, limit)
	if err != nil {
		return nil, err
	}
	return c.client.ZRevRangeByScore(ctx, key, by).Result()
}

func (c *Conn) ZRevRangeByScoreWithScores(ctx context.Context, key string, r zrange.ScoreRange, limit Limit) ([]Member, error) {
	by, err := scoreRangeBy(r, limit)
	if err != nil {
		return nil, err
	}
	zs, err := c.client.ZRevRangeByScoreWithScores(ctx, key, by).Result()
	if err != nil {
		return nil, err
	}
	return fromZ(zs), nil
}

func (c *Conn) ZRangeByLex(ctx context.Context, key string, r zrange.LexRange, limit Limit) ([]string, error) {
	return c.client.ZRangeByLex(ctx, key, &redis.ZRangeBy{
		Min:    r.MinToken(),
		Max:    r.MaxToken(),
		Offset: limit.Offset,
		Count:  limit.Count,
	}).Result()
}

// ZCount reports how many members hold scores inside r.
func (c *Conn) ZCount(ctx context.Context, key string, r zrange.ScoreRange) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return c.client.ZCount(ctx, key, r.MinToken(), r.MaxToken()).Result()
}

func (c *Conn) ZLexCount(ctx context.Context, key string, r zrange.LexRange) (int64, error) {
	return c.client.ZLexCount(ctx, key, r.MinToken(), r.MaxToken()).Result()
}

func (c *Conn) ZCard(ctx context.Context, key string) (int64, error) {
	return c.client.ZCard(ctx, key).Result()
}

// ZScore reports member's score, or Nil when absent.
func (c *Conn) ZScore(ctx context.Context, key, member string) (float64, error) {
	return c.client.ZScore(ctx, key, member).Result()
}

func (c *Conn) ZRemRangeByRank(ctx context.Context, key string, r zrange.RankRange) (int64, error) {
	return c.client.ZRemRangeByRank(ctx, key, r.Start, r.Stop).Result()
}

func (c *Conn) ZRemRangeByScore(ctx context.Context, key string, r zrange.ScoreRange) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return c.client.ZRemRangeByScore(ctx, key, r.MinToken(), r.MaxToken()).Result()
}

func (z ZStoreCmd) store() *redis.ZStore {
	return &redis.ZStore{
		Keys:      z.keys,
		Weights:   z.weights,
		Aggregate: string(z.aggregate),
	}
}

// ZUnionStore unions the command's source sets into its destination and
// reports the destination cardinality. A weights list whose length differs
// from the source keys fails with ErrCodeValidate before anything is sent.
func (c *Conn) ZUnionStore(ctx context.Context, cmd ZStoreCmd) (int64, error) {
	if err := cmd.validate(); err != nil {
		return 0, err
	}
	return c.client.ZUnionStore(ctx, cmd.destination, cmd.store()).Result()
}

// ZInterStore intersects the command's source sets into its destination.
func (c *Conn) ZInterStore(ctx context.Context, cmd ZStoreCmd) (int64, error) {
	if err := cmd.validate(); err != nil {
		return 0, err
	}
	return c.client.ZInterStore(ctx, cmd.destination, cmd.store()).Result()
}
