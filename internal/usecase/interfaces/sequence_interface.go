package interfaces

import "context"

// ISequence is an atomic counter. Next returns 1 on the first call for a key.
type ISequence interface {
	Next(ctx context.Context, key string) (int64, error)
}
