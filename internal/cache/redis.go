package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis is a Store backed by a Redis server. All errors are logged and
// swallowed so an unavailable Redis behaves like an always-empty cache.
type Redis struct {
	client *redis.Client
	log    zerolog.Logger
}

var _ Store = (*Redis)(nil)

// NewRedis creates a Redis-backed store.
func NewRedis(addr, password string, db int, log zerolog.Logger) *Redis {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Redis{
		client: redis.NewClient(opts),
		log:    log,
	}
}

// Get returns the value or nil when missing or redis unavailable.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if r == nil || r.client == nil {
		return nil, nil
	}
	res, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail open: behave like a cache miss
		r.log.Error().Err(err).Str("key", key).Msg("cache get failed")
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r == nil || r.client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.log.Error().Err(err).Str("key", key).Msg("cache set failed")
	}
	return nil
}

// Remove deletes a key, ignoring redis errors.
func (r *Redis) Remove(ctx context.Context, key string) error {
	if r == nil || r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Error().Err(err).Str("key", key).Msg("cache remove failed")
		return nil
	}
	r.log.Debug().Str("key", key).Msg("cache removed")
	return nil
}

// RemoveByPattern scans the keyspace and deletes matches one by one.
func (r *Redis) RemoveByPattern(ctx context.Context, pattern string) error {
	if r == nil || r.client == nil {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.log.Error().Err(err).Str("key", iter.Val()).Msg("cache remove failed")
		}
	}
	if err := iter.Err(); err != nil {
		r.log.Error().Err(err).Str("pattern", pattern).Msg("cache scan failed")
	}
	return nil
}
