// Package config loads rediskit settings from a TOML or YAML file.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/xuenqlve/rediskit/connection"
	"github.com/xuenqlve/rediskit/errors"
	"github.com/xuenqlve/rediskit/transform"
)

type Config struct {
	Options connection.Options

	CacheTTL             time.Duration
	CacheCleanupInterval time.Duration

	LogLevel string
	LogPath  string
}

// Load reads fileName and fills a Config, keeping connection defaults for
// keys the file does not set. Timeout and TTL keys are whole seconds.
func Load(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(fileName)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewError(errors.ErrCodeConfig, err)
	}

	opts := connection.DefaultOptions()
	if v.IsSet("redis.address") {
		opts.Address = v.GetString("redis.address")
	}
	opts.Username = v.GetString("redis.username")
	opts.Password = v.GetString("redis.password")
	opts.DB = v.GetInt("redis.db")
	opts.TLS = v.GetBool("redis.tls")
	if v.IsSet("redis.read_timeout") {
		opts.ReadTimeout = transform.SecondsToDuration(v.GetInt64("redis.read_timeout"))
	}
	if v.IsSet("redis.write_timeout") {
		opts.WriteTimeout = transform.SecondsToDuration(v.GetInt64("redis.write_timeout"))
	}
	if v.IsSet("redis.max_redirects") {
		opts.MaxRedirects = v.GetInt("redis.max_redirects")
	}

	return &Config{
		Options:              opts,
		CacheTTL:             transform.SecondsToDuration(v.GetInt64("cache.ttl")),
		CacheCleanupInterval: transform.SecondsToDuration(v.GetInt64("cache.cleanup_interval")),
		LogLevel:             v.GetString("log.level"),
		LogPath:              v.GetString("log.path"),
	}, nil
}
