package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/rediskit/event"
)

func TestPublishSubscribe(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	sub, err := conn.Subscribe(ctx, "news")
	require.NoError(t, err)
	defer sub.Close()
	assert.NotEmpty(sub.ID())

	received := make(chan event.Message, 1)
	sub.Register("news", func(msg event.Message) {
		received <- msg
	})

	n, err := conn.Publish(ctx, "news", "hello")
	assert.NoError(err)
	assert.Equal(int64(1), n)

	select {
	case msg := <-received:
		assert.Equal("news", msg.Channel)
		assert.Equal("hello", msg.Payload)
	case <-time.After(3 * time.Second):
		t.Fatal("no message delivered")
	}
}

func TestSubscribeAllChannels(t *testing.T) {
	assert := assert.New(t)
	_, conn := newTestConn(t)

	sub, err := conn.Subscribe(ctx, "a", "b")
	require.NoError(t, err)
	defer sub.Close()

	received := make(chan event.Message, 2)
	sub.Register(event.AllChannels, func(msg event.Message) {
		received <- msg
	})

	_, err = conn.Publish(ctx, "a", "one")
	require.NoError(t, err)
	_, err = conn.Publish(ctx, "b", "two")
	require.NoError(t, err)

	channels := map[string]string{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-received:
			channels[msg.Channel] = msg.Payload
		case <-time.After(3 * time.Second):
			t.Fatal("missing message")
		}
	}
	assert.Equal(map[string]string{"a": "one", "b": "two"}, channels)
}

func TestPublishNoSubscribers(t *testing.T) {
	_, conn := newTestConn(t)

	n, err := conn.Publish(ctx, "silent", "payload")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSubscriptionClose(t *testing.T) {
	_, conn := newTestConn(t)

	sub, err := conn.Subscribe(ctx, "ch")
	require.NoError(t, err)

	// Close waits for the delivery goroutine to finish
	assert.NoError(t, sub.Close())
}
