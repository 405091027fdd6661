package cache

import (
	"context"
	"time"

	"VidTube.com/config"
	"github.com/go-redsync/redsync/v4"
	goredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	RedisClient *redis.Client
	rs          *redsync.Redsync
)

func Init() {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Errorf("redis ping failed: %v", err)
	}
	rs = redsync.New(goredis.NewPool(RedisClient))
}

// ToggleLocker serializes engagement-edge flips per (actor, target)
// key via a short-TTL redsync mutex. The store's unique index is the
// hard guarantee; the lock keeps concurrent flips from both paying for
// a conflicting write.
type ToggleLocker struct{}

func NewToggleLocker() *ToggleLocker { return &ToggleLocker{} }

func (l *ToggleLocker) Lock(ctx context.Context, key string) (func(), error) {
	mu := rs.NewMutex("toggle:"+key,
		redsync.WithExpiry(3*time.Second),
		redsync.WithTries(3),
	)
	if err := mu.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		if _, err := mu.UnlockContext(ctx); err != nil {
			logrus.Warnf("failed to release toggle lock %s: %v", key, err)
		}
	}, nil
}
