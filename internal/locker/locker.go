package locker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only when it still holds our value, so an
// expired lock re-acquired by another instance is never released by us.
const releaseScript = `
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`

// RedisLocker is an advisory NX+TTL lock for cross-instance coordination.
// It gates duplicate work, never correctness: callers must still be safe
// when two instances both proceed.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool) {
	value := uuid.New().String()
	ok, err := l.client.SetNX(ctx, "luckydraw:lock:"+key, value, ttl).Result()
	if err != nil {
		zap.L().Warn("advisory lock acquire failed", zap.String("key", key), zap.Error(err))
		return func() {}, false
	}
	if !ok {
		return func() {}, false
	}
	return func() {
		if _, err := l.client.Eval(ctx, releaseScript, []string{"luckydraw:lock:" + key}, value).Result(); err != nil {
			zap.L().Warn("advisory lock release failed", zap.String("key", key), zap.Error(err))
		}
	}, true
}

// NoopLocker always grants the lock. Used when redis is not configured;
// single-instance deployments rely on the database constraints alone.
type NoopLocker struct{}

func (NoopLocker) Acquire(_ context.Context, _ string, _ time.Duration) (func(), bool) {
	return func() {}, true
}
