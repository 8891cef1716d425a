package memory

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
)

type UnitOfWork struct {
	store *Store
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(_ context.Context) interfaces.ITransaction {
	return &transaction{store: u.store}
}

type transaction struct {
	store     *Store
	lines     []*entities.BudgetLine
	movements []*entities.Movement
	flows     []*entities.ApprovalFlow
}

func (t *transaction) PutBudgetLine(line *entities.BudgetLine)  { t.lines = append(t.lines, line) }
func (t *transaction) PutMovement(m *entities.Movement)         { t.movements = append(t.movements, m) }
func (t *transaction) PutApprovalFlow(f *entities.ApprovalFlow) { t.flows = append(t.flows, f) }

// Commit checks every guard before writing anything.
func (t *transaction) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range t.lines {
		cur, exists := s.lines[l.ID()]
		if l.Version() == 0 {
			if exists {
				return interfaces.ErrVersionConflict.Withf("budget line %q already exists", l.ID())
			}
			if _, taken := s.codes[codeKey(l.Code().String(), l.FiscalYear().Int())]; taken {
				return interfaces.ErrVersionConflict.Withf("budget code %s already exists for fiscal year %d", l.Code(), l.FiscalYear())
			}
			continue
		}
		if !exists || cur.Version != l.Version() {
			return interfaces.ErrVersionConflict.Withf("budget line %q was modified concurrently", l.ID())
		}
	}
	for _, m := range t.movements {
		cur, exists := s.movements[m.ID()]
		if m.Version() == 0 {
			if exists {
				return interfaces.ErrVersionConflict.Withf("movement %q already exists", m.ID())
			}
			if _, taken := s.numbers[m.Numbering()]; taken {
				return interfaces.ErrVersionConflict.Withf("movement number %s is already taken", m.Numbering())
			}
			continue
		}
		if !exists || cur.Version != m.Version() {
			return interfaces.ErrVersionConflict.Withf("movement %q was modified concurrently", m.ID())
		}
	}
	for _, f := range t.flows {
		cur, exists := s.flows[f.ID()]
		if f.Version() == 0 && exists {
			return interfaces.ErrVersionConflict.Withf("approval flow %q already exists", f.ID())
		}
		if f.Version() > 0 && (!exists || cur.Version != f.Version()) {
			return interfaces.ErrVersionConflict.Withf("approval flow %q was modified concurrently", f.ID())
		}
	}

	for _, l := range t.lines {
		snap := l.Snapshot()
		snap.Version++
		s.lines[l.ID()] = snap
		s.codes[codeKey(snap.Code, snap.FiscalYear)] = l.ID()
		l.MarkCommitted()
	}
	for _, m := range t.movements {
		snap := m.Snapshot()
		snap.Version++
		s.movements[m.ID()] = snap
		s.numbers[snap.Numbering] = m.ID()
		m.MarkCommitted()
	}
	for _, f := range t.flows {
		snap := f.Snapshot()
		snap.Version++
		s.flows[f.ID()] = snap
		f.MarkCommitted()
	}
	return nil
}
