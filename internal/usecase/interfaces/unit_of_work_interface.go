package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
)

// ErrVersionConflict is returned by Commit when a staged aggregate was changed
// by another writer, or when a unique key (budget code per year, movement
// numbering) is already taken.
var ErrVersionConflict = &entities.DomainError{
	Kind:    entities.KindState,
	Code:    "VERSION_CONFLICT",
	Message: "aggregate was modified concurrently",
}

// IUnitOfWork starts a transaction that stages aggregate writes.
type IUnitOfWork interface {
	Begin(ctx context.Context) ITransaction
}

// ITransaction writes every staged aggregate atomically on Commit.
//
// Each write is guarded by the aggregate version it was loaded with; a new
// aggregate (version 0) must not exist yet. On success every staged aggregate
// is marked committed.
type ITransaction interface {
	PutBudgetLine(line *entities.BudgetLine)
	PutMovement(movement *entities.Movement)
	PutApprovalFlow(f *entities.ApprovalFlow)
	Commit(ctx context.Context) error
}
