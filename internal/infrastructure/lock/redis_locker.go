package lock

import (
	"context"
	"fmt"
	"rubrox/internal/usecase/interfaces"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "rubrox:lock:"

type Options struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

func DefaultOptions() Options {
	return Options{
		Expiry:     10 * time.Second,
		Tries:      32,
		RetryDelay: 100 * time.Millisecond,
	}
}

// RedisLocker serialises writers across instances with redsync mutexes.
type RedisLocker struct {
	rs     *redsync.Redsync
	opts   Options
	logger *zap.Logger
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient, opts Options, logger *zap.Logger) *RedisLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		opts:   opts,
		logger: logger,
	}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(
		keyPrefix+key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		l.logger.Warn("[lock][redis] acquire failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("acquire lock %s: %w", key, err)
	}
	defer func() {
		// unlock must run even when ctx is already done
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			l.logger.Error("[lock][redis] release failed", zap.String("key", key), zap.Bool("ok", ok), zap.Error(err))
		}
	}()

	return fn(ctx)
}
