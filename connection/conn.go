// Package connection binds the server's command surface to typed Go calls.
// It contains no protocol code: transport, pooling and reply parsing belong
// to the driver, this package only shapes arguments and results.
package connection

import (
	"context"
	"crypto/tls"

	"github.com/redis/go-redis/v9"
	uuid "github.com/satori/go.uuid"

	"github.com/xuenqlve/rediskit/errors"
	"github.com/xuenqlve/rediskit/log"
)

// Nil is the driver's reply for a missing key or member.
const Nil = redis.Nil

type Conn struct {
	id     string
	opts   Options
	client redis.UniversalClient
}

// New dials the server described by opts, authenticates and pings before
// returning a usable connection.
func New(ctx context.Context, opts Options) (*Conn, error) {
	var tlsConfig *tls.Config
	if opts.TLS {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var client redis.UniversalClient
	if opts.cluster() {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           opts.addrs(),
			Username:        opts.Username,
			Password:        opts.Password,
			MaxRedirects:    opts.MaxRedirects,
			MinRetryBackoff: opts.MinRetryBackoff,
			MaxRetryBackoff: opts.MaxRetryBackoff,
			ReadTimeout:     opts.ReadTimeout,
			WriteTimeout:    opts.WriteTimeout,
			TLSConfig:       tlsConfig,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:            opts.Address,
			Username:        opts.Username,
			Password:        opts.Password,
			DB:              opts.DB,
			MinRetryBackoff: opts.MinRetryBackoff,
			MaxRetryBackoff: opts.MaxRetryBackoff,
			ReadTimeout:     opts.ReadTimeout,
			WriteTimeout:    opts.WriteTimeout,
			TLSConfig:       tlsConfig,
		})
	}

	c := &Conn{
		id:     uuid.NewV4().String(),
		opts:   opts,
		client: client,
	}
	if err := c.Ping(ctx); err != nil {
		client.Close()
		return nil, errors.NewError(errors.ErrCodeConnect, err)
	}
	log.Infof("connection established. id=[%s] address=[%s]", c.id, opts.Address)
	return c, nil
}

func (c *Conn) ID() string {
	return c.id
}

func (c *Conn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Do sends a raw command for anything the typed surface does not cover.
func (c *Conn) Do(ctx context.Context, args ...any) (any, error) {
	return c.client.Do(ctx, args...).Result()
}

func (c *Conn) Close() error {
	log.Infof("connection closed. id=[%s]", c.id)
	return c.client.Close()
}
