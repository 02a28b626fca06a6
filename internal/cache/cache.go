package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"yatube/internal/config"
)

// PageCache хранит отрендеренные страницы по ключу маршрута.
// Записи живут до истечения TTL или явного Clear, инвалидации при записи нет.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}

type RedisCache struct {
	inner *redis.Client
}

func NewRedisCache(cfg *config.Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	return &RedisCache{inner: client}, nil
}

func PageKey(route string, page int) string {
	return fmt.Sprintf("page:%s:%d", route, page)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.inner.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("ошибка при чтении из кэша: %w", err)
	}

	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.inner.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("ошибка при записи в кэш: %w", err)
	}

	return nil
}

func (c *RedisCache) Clear(ctx context.Context) error {
	err := c.inner.FlushDB(ctx).Err()
	if err != nil {
		return fmt.Errorf("ошибка при очистке кэша: %w", err)
	}

	return nil
}
