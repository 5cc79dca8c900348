package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis подключается к Redis и проверяет соединение.
func NewRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// RedisCache - кэш агрегатов с версионируемым пространством ключей.
// Invalidate увеличивает версию, старые ключи доживают до TTL.
type RedisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создает кэш с префиксом ключей prefix.
func NewRedisCache(rdb *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) versionKey() string {
	return c.prefix + ":version"
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c *RedisCache) version(ctx context.Context, cmd getter) (int64, error) {
	v, err := cmd.Get(ctx, c.versionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return v, nil
}

func (c *RedisCache) key(version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", c.prefix, version, key)
}

// Get читает значение в dst и возвращает версию, в которой искал. false - промах.
func (c *RedisCache) Get(ctx context.Context, key string, dst any) (int64, bool, error) {
	v, err := c.version(ctx, c.rdb)
	if err != nil {
		return 0, false, err
	}

	b, err := c.rdb.Get(ctx, c.key(v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return v, false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return v, true, nil
}

// Set сохраняет значение, только если версия не менялась с момента Get.
// Значение, посчитанное до Invalidate, в новую версию не попадает.
func (c *RedisCache) Set(ctx context.Context, key string, version int64, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.version(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(version, key), b, c.ttl)
			return nil
		})
		return err
	}, c.versionKey())
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate делает все ранее записанные значения недоступными.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, c.versionKey()).Err()
}

// Noop - кэш, который ничего не хранит. Используется без Redis.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (int64, bool, error) { return 0, false, nil }
func (Noop) Set(context.Context, string, int64, any) error         { return nil }
func (Noop) Invalidate(context.Context) error                      { return nil }
