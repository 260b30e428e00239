package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"paygate/internal/config"
	"paygate/internal/domain"
	"paygate/pkg/e"

	"github.com/redis/go-redis/v9"
)

// Redis caches promotion snapshots under "promo:<code>". A snapshot may
// outlive a deactivation by up to its TTL; that staleness is accepted.
type Redis struct {
	client redis.UniversalClient
	logger *slog.Logger
}

func NewRedis(cfg *config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
		DB:       cfg.DBRedis,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis.NewRedis: failed to ping: %w", err)
	}

	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap("redis.Set: failed to marshal value", err)
	}

	if err := r.client.Set(ctx, key, data, exp).Err(); err != nil {
		return e.Wrap("redis.Set", err)
	}

	return nil
}

func (r *Redis) Get(ctx context.Context, key string, value *domain.Promotion) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", e.ErrNotFound
		}
		return "", e.Wrap("redis.Get", err)
	}

	if err := json.Unmarshal([]byte(data), value); err != nil {
		return "", e.Wrap("redis.Get: failed to unmarshal value", err)
	}

	return data, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
