package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/dmitrijs2005/wealthwise/internal/common"
)

const scanBatchSize = 100

// RedisStore is a Store backed by a remote Redis instance, for running the
// client against a shared storage service.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, addr, username, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("redis error: %w", err)
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// escapeGlob neutralizes MATCH pattern metacharacters so the prefix is
// matched literally.
func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

func (r *RedisStore) List(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(prefix) + "*"

	keys := make([]string, 0)
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error: %w", err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	return keys, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
