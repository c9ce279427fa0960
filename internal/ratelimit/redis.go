package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Counter is the subset of redis commands the fixed window needs.
// *redis.Client satisfies it.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// Redis is a fixed-window counter shared by every API instance.
type Redis struct {
	client Counter
	limit  int64
	window time.Duration
	prefix string
}

func NewRedis(client Counter, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit:",
	}
}

// Allow opens the window on the first hit. Later hits re-arm the expiry when
// the key has none, so a lost EXPIRE cannot pin the counter forever.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", k, err)
	}

	arm := n == 1
	if !arm {
		ttl, err := r.client.TTL(ctx, k).Result()
		if err != nil {
			return false, fmt.Errorf("ttl %s: %w", k, err)
		}
		arm = ttl < 0
	}

	if arm {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return n <= r.limit, nil
}
