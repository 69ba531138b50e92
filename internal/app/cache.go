package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shrimpsizemoose/trekker/logger"
)

// NewCache connects to the revalidation cache. No redis_url means no cache
// and a nil client.
func NewCache(ctx context.Context, config *Config) (*redis.Client, error) {
	if config.Cache.RedisURL == "" {
		logger.Info.Println("No redis_url configured, every request fetches the sheets")
		return nil, nil
	}

	opt, err := redis.ParseURL(config.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
