package memory

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"sort"
)

type ApprovalFlowRepository struct {
	store *Store
}

var _ interfaces.IApprovalFlowRepository = (*ApprovalFlowRepository)(nil)

func NewApprovalFlowRepository(store *Store) *ApprovalFlowRepository {
	return &ApprovalFlowRepository{store: store}
}

func (r *ApprovalFlowRepository) GetByID(_ context.Context, id string) (*entities.ApprovalFlow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.flows[id]
	if !ok {
		return nil, nil
	}
	return entities.RehydrateApprovalFlow(s)
}

func (r *ApprovalFlowRepository) ListActionableByRole(_ context.Context, role string) ([]*entities.ApprovalFlow, error) {
	flows, err := r.list(func(s entities.ApprovalFlowSnapshot) bool { return s.State.IsActionable() })
	if err != nil {
		return nil, err
	}
	out := flows[:0]
	for _, f := range flows {
		if f.AwaitsRole(role) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *ApprovalFlowRepository) ListByLine(_ context.Context, lineID string) ([]*entities.ApprovalFlow, error) {
	return r.list(func(s entities.ApprovalFlowSnapshot) bool { return s.LineID == lineID })
}

func (r *ApprovalFlowRepository) ListByState(_ context.Context, state entities.FlowState) ([]*entities.ApprovalFlow, error) {
	return r.list(func(s entities.ApprovalFlowSnapshot) bool { return s.State == state })
}

func (r *ApprovalFlowRepository) list(match func(entities.ApprovalFlowSnapshot) bool) ([]*entities.ApprovalFlow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.ApprovalFlow, 0)
	for _, s := range r.store.flows {
		if !match(s) {
			continue
		}
		f, err := entities.RehydrateApprovalFlow(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt().Before(out[j].StartedAt()) })
	return out, nil
}
