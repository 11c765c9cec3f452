package connection

import (
	"strings"
	"time"
)

// Options describes how to reach the server. Address holds one address for a
// standalone node or several joined by ";" for a cluster.
type Options struct {
	Address  string
	Username string
	Password string
	DB       int
	TLS      bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	MaxRedirects    int
}

func DefaultOptions() Options {
	return Options{
		Address:         "127.0.0.1:6379",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 1 * time.Second,
		MaxRedirects:    600,
	}
}

func (o Options) addrs() []string {
	return strings.Split(o.Address, ";")
}

func (o Options) cluster() bool {
	return len(o.addrs()) > 1
}
