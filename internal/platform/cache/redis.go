package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Address  string
	Password string
	DB       int
}

const (
	maxRetries = 5
	retryDelay = 2 * time.Second
)

func NewRedisClient(ctx context.Context, cfg Config, log *slog.Logger) (*redis.Client, error) {
	const op = "platform.cache.NewRedisClient"

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	for i := 1; i <= maxRetries; i++ {
		log.Info("connecting to redis", slog.String("addr", cfg.Address), slog.Int("attempt", i))

		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		log.Warn("redis not ready yet", slog.Duration("retry_in", retryDelay))

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(retryDelay):
		}
	}

	_ = client.Close()

	return nil, fmt.Errorf("%s: %w", op, err)
}
