package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	ok, err := conn.Set(ctx, "foo", "bar", 0)
	assert.NoError(err)
	assert.True(ok)

	value, err := conn.Get(ctx, "foo")
	assert.NoError(err)
	assert.Equal("bar", value)

	value, err = conn.Get(ctx, "none")
	assert.Equal(Nil, err)
	assert.Equal("", value)
}

func TestSetWithConditions(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	// NX on a fresh key applies
	ok, err := conn.SetWith(ctx, SetValue("cond", "v1").NX())
	assert.NoError(err)
	assert.True(ok)

	// NX again is refused
	ok, err = conn.SetWith(ctx, SetValue("cond", "v2").NX())
	assert.NoError(err)
	assert.False(ok)

	// XX on an existing key applies
	ok, err = conn.SetWith(ctx, SetValue("cond", "v3").XX())
	assert.NoError(err)
	assert.True(ok)

	value, err := conn.Get(ctx, "cond")
	assert.NoError(err)
	assert.Equal("v3", value)

	// XX on a missing key is refused
	ok, err = conn.SetWith(ctx, SetValue("fresh", "v").XX())
	assert.NoError(err)
	assert.False(ok)

	// plain SetCmd with expiration
	ok, err = conn.SetWith(ctx, SetValue("tmp", "v").Expiring(20*time.Second))
	assert.NoError(err)
	assert.True(ok)

	ttl, err := conn.TTL(ctx, "tmp")
	assert.NoError(err)
	assert.Equal(int64(20), ttl)
}

func TestSetEX(t *testing.T) {
	assert := assert.New(t)
	mr, conn := newTestConn(t)

	ok, err := conn.SetEX(ctx, "foo", "bar", 5)
	assert.NoError(err)
	assert.True(ok)

	mr.FastForward(6 * time.Second)
	_, err = conn.Get(ctx, "foo")
	assert.Equal(Nil, err)

	ok, err = conn.PSetEX(ctx, "foo", "bar", 500)
	assert.NoError(err)
	assert.True(ok)

	mr.FastForward(time.Second)
	_, err = conn.Get(ctx, "foo")
	assert.Equal(Nil, err)
}

func TestGetSet(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	_, err := conn.GetSet(ctx, "foo", "first")
	assert.Equal(Nil, err)

	old, err := conn.GetSet(ctx, "foo", "second")
	assert.NoError(err)
	assert.Equal("first", old)
}

func TestMultiKeyCommands(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	ok, err := conn.MSet(ctx, map[string]string{"k1": "v1", "k2": "v2"})
	assert.NoError(err)
	assert.True(ok)

	values, err := conn.MGet(ctx, "k1", "k2", "none")
	require.NoError(t, err)
	assert.Equal([]any{"v1", "v2", nil}, values)

	// MSetNX refuses when any key exists
	ok, err = conn.MSetNX(ctx, map[string]string{"k2": "x", "k3": "v3"})
	assert.NoError(err)
	assert.False(ok)

	ok, err = conn.MSetNX(ctx, map[string]string{"k3": "v3", "k4": "v4"})
	assert.NoError(err)
	assert.True(ok)
}

func TestStringEditing(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	n, err := conn.Append(ctx, "s", "Hello")
	assert.NoError(err)
	assert.Equal(int64(5), n)

	n, err = conn.Append(ctx, "s", " World")
	assert.NoError(err)
	assert.Equal(int64(11), n)

	part, err := conn.GetRange(ctx, "s", 0, 4)
	assert.NoError(err)
	assert.Equal("Hello", part)

	n, err = conn.SetRange(ctx, "s", 6, "Redis")
	assert.NoError(err)
	assert.Equal(int64(11), n)

	n, err = conn.StrLen(ctx, "s")
	assert.NoError(err)
	assert.Equal(int64(11), n)
}

func TestNumericCommands(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	n, err := conn.Incr(ctx, "counter")
	assert.NoError(err)
	assert.Equal(int64(1), n)

	n, err = conn.IncrBy(ctx, "counter", 9)
	assert.NoError(err)
	assert.Equal(int64(10), n)

	n, err = conn.Decr(ctx, "counter")
	assert.NoError(err)
	assert.Equal(int64(9), n)

	n, err = conn.DecrBy(ctx, "counter", 4)
	assert.NoError(err)
	assert.Equal(int64(5), n)

	f, err := conn.IncrByFloat(ctx, "ratio", 0.5)
	assert.NoError(err)
	assert.Equal(0.5, f)
}
