package cache

import (
	"context"
	"fmt"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sequencePrefix = "rubrox:seq:"

// Connect opens a redis client and checks it with PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisSequence numbers movements with INCR, one key per prefix and year.
type RedisSequence struct {
	client redis.UniversalClient
}

var _ interfaces.ISequence = (*RedisSequence)(nil)

func NewRedisSequence(client redis.UniversalClient) *RedisSequence {
	return &RedisSequence{client: client}
}

func (s *RedisSequence) Next(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, sequencePrefix+key).Result()
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", key, err)
	}
	return n, nil
}
