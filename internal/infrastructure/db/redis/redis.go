// Package redis provides the Redis client used for the sanitized-user cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config holds the cache store connection settings. Password is empty when
// the server runs without AUTH, which is the local development default.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

func (c Config) clientOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

func (c Config) pingTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultPingTimeout
}

// Connect builds a Redis client from cfg and verifies the server is reachable
// before handing it out. The caller owns the returned client and must Close it
// on shutdown.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(cfg.clientOptions())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
