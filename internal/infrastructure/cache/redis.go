package redisclient

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a Redis client from a URL and pings it. A failed
// ping is logged but not fatal; the caller treats the cache as best-effort.
func NewRedisFromURL(ctx context.Context, redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, falling back to defaults: %v", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed: %v", err)
	}
	return rdb
}

// Close closes the Redis client.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
