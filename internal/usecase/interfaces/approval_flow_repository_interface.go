package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
)

// IApprovalFlowRepository reads ApprovalFlow aggregates. Writes go through ITransaction.
//
// Lookups return (nil, nil) when the flow does not exist.
type IApprovalFlowRepository interface {
	GetByID(ctx context.Context, id string) (*entities.ApprovalFlow, error)
	// ListActionableByRole returns actionable flows whose pending step requires role, oldest first.
	ListActionableByRole(ctx context.Context, role string) ([]*entities.ApprovalFlow, error)
	ListByLine(ctx context.Context, lineID string) ([]*entities.ApprovalFlow, error)
	ListByState(ctx context.Context, state entities.FlowState) ([]*entities.ApprovalFlow, error)
}
