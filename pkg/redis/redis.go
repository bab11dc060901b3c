package redis

import (
	"context"
	"errors"
	"time"

	"lolladder/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ErrNil is returned when a key doesn't exist.
var ErrNil = redis.Nil

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates a client from the configuration.
func NewClient(cfg config.RedisConfiguration) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     10,
		MinIdleConns: 1,
		PoolTimeout:  30 * time.Second,
	})

	return &RedisClient{
		Client: client,
	}
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Ping the server, used to disable the cache early when it's unreachable.
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// IsNil reports whether the error is a missing key.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
