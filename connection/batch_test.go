package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/rediskit/zrange"
)

func TestBatchExec(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	batch := conn.NewBatch()
	setCmd := batch.Set(ctx, "foo", "bar", 0)
	incrCmd := batch.Incr(ctx, "counter")
	zaddCmd := batch.ZAdd(ctx, "z", Member{Member: "a", Score: 1}, Member{Member: "b", Score: 2})
	rangeCmd := batch.ZRangeByScore(ctx, "z", zrange.AllScores(), Limit{})
	assert.Equal(4, batch.Len())

	require.NoError(t, batch.Exec(ctx))

	assert.Equal("OK", setCmd.Val())
	assert.Equal(int64(1), incrCmd.Val())
	assert.Equal(int64(2), zaddCmd.Val())
	assert.Equal([]string{"a", "b"}, rangeCmd.Val())
}

func TestBatchNilReply(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	batch := conn.NewBatch()
	missCmd := batch.Get(ctx, "none")
	setCmd := batch.Set(ctx, "foo", "bar", 0)

	// a Nil inside the batch does not fail the execution
	assert.NoError(batch.Exec(ctx))
	assert.Equal(Nil, missCmd.Err())
	assert.Equal("OK", setCmd.Val())
}

func TestBatchDel(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	_, err := conn.MSet(ctx, map[string]string{"k1": "v1", "k2": "v2"})
	require.NoError(t, err)

	batch := conn.NewBatch()
	delCmd := batch.Del(ctx, "k1", "k2", "none")
	require.NoError(t, batch.Exec(ctx))
	assert.Equal(int64(2), delCmd.Val())
}

func TestBatchDiscard(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	batch := conn.NewBatch()
	batch.Set(ctx, "foo", "bar", 0)
	assert.Equal(1, batch.Len())

	batch.Discard()
	assert.Equal(0, batch.Len())

	_, err := conn.Get(ctx, "foo")
	assert.Equal(Nil, err)
}
