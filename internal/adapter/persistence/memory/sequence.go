package memory

import (
	"context"
	"rubrox/internal/usecase/interfaces"
)

type Sequence struct {
	store *Store
}

var _ interfaces.ISequence = (*Sequence)(nil)

func NewSequence(store *Store) *Sequence {
	return &Sequence{store: store}
}

func (s *Sequence) Next(_ context.Context, key string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.sequences[key]++
	return s.store.sequences[key], nil
}
