package adapter

import (
	"context"
	"errors"
	"time"

	"homework-grader/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter is the redis-backed domain.Cache. Any redis.Cmdable works,
// so a single node client and a cluster client are interchangeable.
type RedisCacheAdapter struct {
	rdb redis.Cmdable
}

func NewRedisCacheAdapter(rdb redis.Cmdable) domain.Cache {
	return &RedisCacheAdapter{rdb: rdb}
}

func wrapRedisErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return domain.NewCacheError(err).WithContext("op", op).WithContext("key", key)
}

// Get maps redis.Nil to domain.ErrCacheMiss
func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	if err != nil {
		return "", wrapRedisErr("get", key, err)
	}
	return val, nil
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return wrapRedisErr("set", key, r.rdb.Set(ctx, key, value, expiration).Err())
}

func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return wrapRedisErr("del", key, r.rdb.Del(ctx, key).Err())
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
