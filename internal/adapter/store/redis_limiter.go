package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter caps AI calls per client per day. Keys roll over at midnight
// UTC and expire on their own.
type RedisLimiter struct {
	client *redis.Client
	limit  int // Max requests per client per day
}

func NewRedisLimiter(client *redis.Client, limit int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
	}
}

func (r *RedisLimiter) key(clientID string) string {
	return "usage:" + clientID + ":" + time.Now().UTC().Format("2006-01-02")
}

func (r *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	val, err := r.client.Get(ctx, r.key(clientID)).Result()
	if err == redis.Nil {
		return true, nil // No usage yet
	}
	if err != nil {
		return false, err
	}
	usage, _ := strconv.Atoi(val)
	return usage < r.limit, nil
}

func (r *RedisLimiter) Record(ctx context.Context, clientID string) error {
	key := r.key(clientID)
	if err := r.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, 48*time.Hour).Err()
}
