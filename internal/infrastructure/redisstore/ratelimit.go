package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter backed by Redis, so limits hold
// across process restarts and multiple API instances.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb, prefix: "ratelimit"}
}

// Allow counts one request for key and reports whether the window budget
// still holds. Redis being down fails open: throttling is protection, not a
// correctness gate.
func (l *RateLimiter) Allow(ctx context.Context, key string, maxRequests int, window time.Duration) (bool, error) {
	bucket := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().Unix()/int64(window.Seconds()))

	count, err := l.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		l.rdb.Expire(ctx, bucket, window)
	}

	return count <= int64(maxRequests), nil
}
