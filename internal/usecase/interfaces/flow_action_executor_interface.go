package interfaces

import (
	"context"
	"rubrox/internal/domain/entities"
)

// IFlowActionExecutor applies the ledger action gated by an approved flow.
type IFlowActionExecutor interface {
	Execute(ctx context.Context, flow *entities.ApprovalFlow) error
}
