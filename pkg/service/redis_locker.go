package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	defaultLockTTL   = 10 * time.Second
	defaultLockRetry = 50 * time.Millisecond
)

// unlockScript deletes the key only if it still holds our token
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every process connected to the same Redis
// A lock expires after TTL so a crashed process cannot hold a game forever.
type RedisLocker struct {
	logger logrus.FieldLogger
	client redis.Cmdable
	prefix string
	TTL    time.Duration
	Retry  time.Duration
}

// NewRedisLocker returns a RedisLocker
func NewRedisLocker(logger logrus.FieldLogger, client redis.Cmdable) *RedisLocker {
	return &RedisLocker{
		logger: logger,
		client: client,
		prefix: "holdem/lock/",
		TTL:    defaultLockTTL,
		Retry:  defaultLockRetry,
	}
}

// NewRedisClient returns a client for addr
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Lock implements Locker
func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = r.prefix + key
	token := uuid.New().String()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("could not acquire lock %s: %w", key, err)
		}

		if ok {
			break
		}

		timer := time.NewTimer(r.Retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if err := unlockScript.Run(context.Background(), r.client, []string{key}, token).Err(); err != nil {
				r.logger.WithError(err).WithField("key", key).Error("could not release lock")
			}
		})
	}, nil
}
