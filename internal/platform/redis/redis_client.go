// Package redis bootstraps the optional Redis client for the session backend.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/platform/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// An error here is not fatal to the server; the caller falls back to the
// MySQL session repository.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisHost + ":" + cfg.RedisPort

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
