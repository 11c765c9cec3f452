package event

import (
	"sync"
)

// AllChannels registers an observer for every channel of the subscription.
const AllChannels = "*"

type Dispatcher struct {
	mu       sync.Mutex
	observer map[string][]ObserverFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		observer: map[string][]ObserverFunc{},
	}
}

func (d *Dispatcher) Register(channel string, observer ObserverFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.observer[channel]; !ok {
		d.observer[channel] = []ObserverFunc{}
	}
	d.observer[channel] = append(d.observer[channel], observer)
}

func (d *Dispatcher) Dispatch(m Message) {
	d.mu.Lock()
	observers := make([]ObserverFunc, 0, len(d.observer[m.Channel])+len(d.observer[AllChannels]))
	observers = append(observers, d.observer[m.Channel]...)
	observers = append(observers, d.observer[AllChannels]...)
	d.mu.Unlock()

	for _, fn := range observers {
		fn(m)
	}
}
