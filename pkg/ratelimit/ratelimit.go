package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store records hits for an identifier and reports how many fall inside the
// current window. Implementations own their eviction policy.
type Store interface {
	Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error)
}

// Limiter implements sliding-window rate limiting over a Store
type Limiter struct {
	store       Store
	category    string
	maxRequests int
	window      time.Duration
}

// NewLimiter creates a limiter for one endpoint category
func NewLimiter(store Store, category string, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		store:       store,
		category:    category,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Limit returns the configured maximum
func (l *Limiter) Limit() int {
	return l.maxRequests
}

// Allow records a hit for identifier and reports whether it is within limits
func (l *Limiter) Allow(ctx context.Context, identifier string) (allowed bool, remaining int, resetTime time.Time, err error) {
	now := time.Now()
	key := fmt.Sprintf("ratelimit:%s:%s", l.category, identifier)

	count, err := l.store.Hit(ctx, key, now, l.window)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	remaining = l.maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= int64(l.maxRequests), remaining, now.Add(l.window), nil
}

// RedisStore keeps hit timestamps in a redis sorted set
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Hit records a request and counts the window, including this request
func (s *RedisStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	windowStart := now.Add(-window)

	pipe := s.client.Pipeline()

	// Remove entries outside the window
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))

	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return countCmd.Val(), nil
}
