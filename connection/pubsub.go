package connection

import (
	"context"

	"github.com/redis/go-redis/v9"
	uuid "github.com/satori/go.uuid"

	"github.com/xuenqlve/rediskit/event"
	"github.com/xuenqlve/rediskit/log"
)

// Publish sends payload to channel and reports how many subscribers got it.
func (c *Conn) Publish(ctx context.Context, channel, payload string) (int64, error) {
	return c.client.Publish(ctx, channel, payload).Result()
}

// Subscription fans messages from subscribed channels out to registered
// observers until Close.
type Subscription struct {
	id         string
	ps         *redis.PubSub
	dispatcher *event.Dispatcher
	done       chan struct{}
}

// Subscribe opens a subscription on the given channels. Observers registered
// with Register run on the subscription's delivery goroutine, so they must
// not block.
func (c *Conn) Subscribe(ctx context.Context, channels ...string) (*Subscription, error) {
	ps := c.client.Subscribe(ctx, channels...)
	// confirm the subscription before handing it out
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, err
	}

	s := &Subscription{
		id:         uuid.NewV4().String(),
		ps:         ps,
		dispatcher: event.NewDispatcher(),
		done:       make(chan struct{}),
	}
	log.Debugf("subscription opened. id=[%s] channels=%v", s.id, channels)

	go func() {
		defer close(s.done)
		for msg := range ps.Channel() {
			s.dispatcher.Dispatch(event.Message{
				Channel: msg.Channel,
				Pattern: msg.Pattern,
				Payload: msg.Payload,
			})
		}
	}()
	return s, nil
}

func (s *Subscription) ID() string {
	return s.id
}

// Register adds an observer for one channel, or for every channel with
// event.AllChannels.
func (s *Subscription) Register(channel string, fn event.ObserverFunc) {
	s.dispatcher.Register(channel, fn)
}

// Close tears the subscription down and waits for the delivery goroutine.
func (s *Subscription) Close() error {
	err := s.ps.Close()
	<-s.done
	log.Debugf("subscription closed. id=[%s]", s.id)
	return err
}
