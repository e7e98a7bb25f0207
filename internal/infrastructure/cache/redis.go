package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"internhub/internal/config"
)

// Redis wraps a go-redis client with a bypass mode: when the server is
// unreachable every read misses and every write is a no-op, so callers
// never have to care whether caching is on.
type Redis struct {
	client     *redis.Client
	logger     *log.Logger
	defaultTTL time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger, defaultTTL: ttl}
	}

	return &Redis{client: client, logger: logger, defaultTTL: ttl}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

// GetJSON reports whether the key was present and unmarshaled into out.
// An unreachable server reads as a miss.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// DeleteByPattern drops every key matching the glob pattern. Used to
// invalidate the search result cache after the internship catalog
// changes.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() || pattern == "" {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil {
			if r.logger != nil {
				r.logger.Printf("[Cache] Redis delete error key=%s pattern=%s err=%v", k, pattern, err)
			}
		}
	}
	return iter.Err()
}

func (r *Redis) SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return false, err
	}
	return ok, nil
}
