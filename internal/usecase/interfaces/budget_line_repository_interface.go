package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
)

// IBudgetLineRepository reads BudgetLine aggregates. Writes go through ITransaction.
//
// Lookups return (nil, nil) when the line does not exist.
type IBudgetLineRepository interface {
	GetByID(ctx context.Context, id string) (*entities.BudgetLine, error)
	GetByCode(ctx context.Context, code entities.BudgetCode, year entities.FiscalYear) (*entities.BudgetLine, error)
	// ListByFiscalYear returns the lines of a year ordered by code.
	ListByFiscalYear(ctx context.Context, year entities.FiscalYear) ([]*entities.BudgetLine, error)
	// ListChildren resolves children through their parent pointer.
	ListChildren(ctx context.Context, parentID string) ([]*entities.BudgetLine, error)
}
