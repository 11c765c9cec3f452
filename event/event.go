package event

// Message is one published notification as delivered to observers.
type Message struct {
	Channel string
	Pattern string
	Payload string
}

type ObserverFunc func(m Message)

type Subject interface {
	Register(channel string, observer ObserverFunc)
	Dispatch(m Message)
}
