package interfaces

import "context"

// ILocker serialises writers of the same aggregate id.
type ILocker interface {
	// WithLock runs fn while holding the lock for key.
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
