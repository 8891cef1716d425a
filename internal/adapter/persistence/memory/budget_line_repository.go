package memory

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"sort"
)

type BudgetLineRepository struct {
	store *Store
}

var _ interfaces.IBudgetLineRepository = (*BudgetLineRepository)(nil)

func NewBudgetLineRepository(store *Store) *BudgetLineRepository {
	return &BudgetLineRepository{store: store}
}

func (r *BudgetLineRepository) GetByID(_ context.Context, id string) (*entities.BudgetLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.lines[id]
	if !ok {
		return nil, nil
	}
	return entities.RehydrateBudgetLine(s)
}

func (r *BudgetLineRepository) GetByCode(ctx context.Context, code entities.BudgetCode, year entities.FiscalYear) (*entities.BudgetLine, error) {
	r.store.mu.RLock()
	id, ok := r.store.codes[codeKey(code.String(), year.Int())]
	r.store.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *BudgetLineRepository) ListByFiscalYear(_ context.Context, year entities.FiscalYear) ([]*entities.BudgetLine, error) {
	return r.list(func(s entities.BudgetLineSnapshot) bool { return s.FiscalYear == year.Int() })
}

func (r *BudgetLineRepository) ListChildren(_ context.Context, parentID string) ([]*entities.BudgetLine, error) {
	return r.list(func(s entities.BudgetLineSnapshot) bool { return s.ParentID == parentID })
}

func (r *BudgetLineRepository) list(match func(entities.BudgetLineSnapshot) bool) ([]*entities.BudgetLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.BudgetLine, 0)
	for _, s := range r.store.lines {
		if !match(s) {
			continue
		}
		l, err := entities.RehydrateBudgetLine(s)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code().String() < out[j].Code().String() })
	return out, nil
}
