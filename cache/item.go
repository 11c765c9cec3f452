package cache

import "time"

// Item is one cached reply.
type Item struct {
	Value      string
	Expiration int64
	Created    time.Time
}

func (i Item) Expired() bool {
	if i.Expiration == 0 {
		return false
	}
	return time.Now().UnixNano() > i.Expiration
}
