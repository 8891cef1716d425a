package memory

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"sort"
	"time"
)

type MovementRepository struct {
	store *Store
}

var _ interfaces.IMovementRepository = (*MovementRepository)(nil)

func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

func (r *MovementRepository) GetByID(_ context.Context, id string) (*entities.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	return entities.RehydrateMovement(s)
}

func (r *MovementRepository) ListByLine(_ context.Context, lineID string) ([]*entities.Movement, error) {
	return r.list(func(s entities.MovementSnapshot) bool { return s.LineID == lineID })
}

func (r *MovementRepository) ListByParent(_ context.Context, parentID string) ([]*entities.Movement, error) {
	return r.list(func(s entities.MovementSnapshot) bool { return s.ParentID == parentID })
}

func (r *MovementRepository) ListDue(_ context.Context, movementType entities.MovementType, now time.Time) ([]*entities.Movement, error) {
	return r.list(func(s entities.MovementSnapshot) bool {
		return s.Type == movementType &&
			s.State == entities.MovementStateActive &&
			s.DueDate != nil && !s.DueDate.After(now)
	})
}

func (r *MovementRepository) list(match func(entities.MovementSnapshot) bool) ([]*entities.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.Movement, 0)
	for _, s := range r.store.movements {
		if !match(s) {
			continue
		}
		m, err := entities.RehydrateMovement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RegisteredAt().Equal(out[j].RegisteredAt()) {
			return out[i].Numbering() < out[j].Numbering()
		}
		return out[i].RegisteredAt().Before(out[j].RegisteredAt())
	})
	return out, nil
}
