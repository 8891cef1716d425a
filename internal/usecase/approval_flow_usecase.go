package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

type InitiateFlowCommand struct {
	FlowType    string
	InitiatorID string
	Payload     json.RawMessage
	LineID      string
	MovementID  string
}

// IApprovalFlowUseCase exposes the multi-step approval workflow.
//
// When the last step is approved the gated action is applied through
// IFlowActionExecutor after the flow itself is committed. An approved flow
// whose action failed keeps ActionApplied false and can be replayed with
// ExecuteAction.
type IApprovalFlowUseCase interface {
	Initiate(ctx context.Context, cmd InitiateFlowCommand) (*entities.ApprovalFlow, error)
	Approve(ctx context.Context, flowID, approverID, role, comment string) (*entities.ApprovalFlow, error)
	Reject(ctx context.Context, flowID, approverID, role, reason string) (*entities.ApprovalFlow, error)
	Return(ctx context.Context, flowID, approverID, role, reason string) (*entities.ApprovalFlow, error)
	ExecuteAction(ctx context.Context, flowID string) (*entities.ApprovalFlow, error)
	Inbox(ctx context.Context, role string) ([]*entities.ApprovalFlow, error)
	GetByID(ctx context.Context, id string) (*entities.ApprovalFlow, error)
	ListByLine(ctx context.Context, lineID string) ([]*entities.ApprovalFlow, error)
	ListByState(ctx context.Context, state string) ([]*entities.ApprovalFlow, error)
}

type ApprovalFlowUseCase struct {
	writer
	repo         interfaces.IApprovalFlowRepository
	lineRepo     interfaces.IBudgetLineRepository
	movementRepo interfaces.IMovementRepository
	executor     interfaces.IFlowActionExecutor
	policy       RolePolicy
}

var _ IApprovalFlowUseCase = (*ApprovalFlowUseCase)(nil)

func NewApprovalFlowUseCase(
	repo interfaces.IApprovalFlowRepository,
	lineRepo interfaces.IBudgetLineRepository,
	movementRepo interfaces.IMovementRepository,
	executor interfaces.IFlowActionExecutor,
	policy RolePolicy,
	uow interfaces.IUnitOfWork,
	locker interfaces.ILocker,
	dispatcher interfaces.IEventDispatcher,
	logger *zap.Logger,
) *ApprovalFlowUseCase {
	if policy == nil {
		policy = DefaultRolePolicy()
	}
	return &ApprovalFlowUseCase{
		writer:       newWriter(uow, locker, dispatcher, logger),
		repo:         repo,
		lineRepo:     lineRepo,
		movementRepo: movementRepo,
		executor:     executor,
		policy:       policy,
	}
}

func (u *ApprovalFlowUseCase) Initiate(ctx context.Context, cmd InitiateFlowCommand) (*entities.ApprovalFlow, error) {
	flowType, err := entities.ParseFlowType(cmd.FlowType)
	if err != nil {
		return nil, err
	}
	if len(cmd.Payload) == 0 || !json.Valid(cmd.Payload) {
		return nil, ErrInvalidPayload
	}

	// Step roles always come from the configured policy, never from the caller.
	roles := u.policy.StepsFor(flowType)
	if len(roles) == 0 {
		return nil, ErrNoStepRoles.Withf("no approval roles configured for flow type %q", flowType)
	}

	lineID := strings.TrimSpace(cmd.LineID)
	if lineID != "" {
		line, err := u.lineRepo.GetByID(ctx, lineID)
		if err != nil {
			return nil, err
		}
		if line == nil {
			return nil, ErrBudgetLineNotFound.Withf("budget line %q not found", lineID)
		}
	}
	movementID := strings.TrimSpace(cmd.MovementID)
	if movementID != "" {
		m, err := u.movementRepo.GetByID(ctx, movementID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, ErrMovementNotFound.Withf("movement %q not found", movementID)
		}
	}

	flow, err := entities.NewApprovalFlow(flowType, cmd.InitiatorID, string(cmd.Payload), roles, lineID, movementID)
	if err != nil {
		return nil, err
	}
	if err := u.commit(ctx, func(tx interfaces.ITransaction) { tx.PutApprovalFlow(flow) }, flow); err != nil {
		return nil, err
	}

	u.logger.Info("[approval-flow][usecase] initiated",
		zap.String("flow_id", flow.ID()),
		zap.String("flow_type", string(flow.Type())),
		zap.Strings("roles", roles))
	return flow, nil
}

func (u *ApprovalFlowUseCase) Approve(ctx context.Context, flowID, approverID, role, comment string) (*entities.ApprovalFlow, error) {
	return u.act(ctx, flowID, func(f *entities.ApprovalFlow) error {
		return f.Approve(approverID, role, comment)
	}, func(ctx context.Context, f *entities.ApprovalFlow) error {
		if f.State() != entities.FlowStateApproved || u.executor == nil {
			return nil
		}
		return u.applyAction(ctx, f)
	})
}

// ExecuteAction runs the gated action of an approved flow whose earlier
// attempt failed.
func (u *ApprovalFlowUseCase) ExecuteAction(ctx context.Context, flowID string) (*entities.ApprovalFlow, error) {
	flowID = strings.TrimSpace(flowID)
	if flowID == "" {
		return nil, ErrInvalidID
	}
	if u.executor == nil {
		return nil, ErrNoFlowExecutor
	}

	var flow *entities.ApprovalFlow
	err := u.withLock(ctx, flowLockKey(flowID), func(ctx context.Context) error {
		f, err := u.load(ctx, flowID)
		if err != nil {
			return err
		}
		if f.State() != entities.FlowStateApproved {
			return entities.ErrFlowNotApproved.Withf("approval flow action cannot run in state %s", f.State())
		}
		if f.ActionApplied() {
			return entities.ErrFlowActionApplied.Withf("approval flow %q action was already applied", f.ID())
		}
		flow = f
		return u.applyAction(ctx, f)
	})
	return flow, err
}

// applyAction runs the executor and records the flow as applied. An executor
// failure leaves the flow untouched and is wrapped in ErrFlowActionFailed.
// Callers hold the flow lock.
func (u *ApprovalFlowUseCase) applyAction(ctx context.Context, f *entities.ApprovalFlow) error {
	if err := u.executor.Execute(ctx, f); err != nil {
		u.logger.Error("[approval-flow][usecase] approved flow action failed, replay with execute",
			zap.String("flow_id", f.ID()),
			zap.String("flow_type", string(f.Type())),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrFlowActionFailed, err)
	}
	if err := f.MarkActionApplied(); err != nil {
		return err
	}
	if err := u.commit(ctx, func(tx interfaces.ITransaction) { tx.PutApprovalFlow(f) }, f); err != nil {
		u.logger.Error("[approval-flow][usecase] flow action applied but not recorded",
			zap.String("flow_id", f.ID()),
			zap.String("flow_type", string(f.Type())),
			zap.Error(err))
		return err
	}

	u.logger.Info("[approval-flow][usecase] approved flow action applied",
		zap.String("flow_id", f.ID()),
		zap.String("flow_type", string(f.Type())))
	return nil
}

func (u *ApprovalFlowUseCase) Reject(ctx context.Context, flowID, approverID, role, reason string) (*entities.ApprovalFlow, error) {
	return u.act(ctx, flowID, func(f *entities.ApprovalFlow) error {
		return f.Reject(approverID, role, reason)
	}, nil)
}

func (u *ApprovalFlowUseCase) Return(ctx context.Context, flowID, approverID, role, reason string) (*entities.ApprovalFlow, error) {
	return u.act(ctx, flowID, func(f *entities.ApprovalFlow) error {
		return f.Return(approverID, role, reason)
	}, nil)
}

// act applies op and commits the flow. after, when set, runs under the same
// flow lock once the commit succeeded; the committed flow is returned even
// when after fails.
func (u *ApprovalFlowUseCase) act(
	ctx context.Context,
	flowID string,
	op func(f *entities.ApprovalFlow) error,
	after func(ctx context.Context, f *entities.ApprovalFlow) error,
) (*entities.ApprovalFlow, error) {
	flowID = strings.TrimSpace(flowID)
	if flowID == "" {
		return nil, ErrInvalidID
	}

	var flow *entities.ApprovalFlow
	err := u.withLock(ctx, flowLockKey(flowID), func(ctx context.Context) error {
		f, err := u.load(ctx, flowID)
		if err != nil {
			return err
		}
		if err := op(f); err != nil {
			return err
		}
		if err := u.commit(ctx, func(tx interfaces.ITransaction) { tx.PutApprovalFlow(f) }, f); err != nil {
			return err
		}
		flow = f
		u.logger.Info("[approval-flow][usecase] step acted",
			zap.String("flow_id", f.ID()),
			zap.String("state", string(f.State())),
			zap.Int("current_step", f.CurrentStep()))
		if after != nil {
			return after(ctx, f)
		}
		return nil
	})
	return flow, err
}

// Inbox lists actionable flows waiting on role, oldest first.
func (u *ApprovalFlowUseCase) Inbox(ctx context.Context, role string) ([]*entities.ApprovalFlow, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return []*entities.ApprovalFlow{}, nil
	}
	return u.repo.ListActionableByRole(ctx, role)
}

func (u *ApprovalFlowUseCase) GetByID(ctx context.Context, id string) (*entities.ApprovalFlow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return u.load(ctx, id)
}

func (u *ApprovalFlowUseCase) ListByLine(ctx context.Context, lineID string) ([]*entities.ApprovalFlow, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidID
	}
	return u.repo.ListByLine(ctx, lineID)
}

func (u *ApprovalFlowUseCase) ListByState(ctx context.Context, state string) ([]*entities.ApprovalFlow, error) {
	s := entities.FlowState(strings.ToLower(strings.TrimSpace(state)))
	switch s {
	case entities.FlowStatePending, entities.FlowStateInReview, entities.FlowStateApproved,
		entities.FlowStateRejected, entities.FlowStateReturned, entities.FlowStateCancelled:
	default:
		return nil, entities.ErrValidation.Withf("invalid approval flow state %q", state)
	}
	return u.repo.ListByState(ctx, s)
}

func (u *ApprovalFlowUseCase) load(ctx context.Context, id string) (*entities.ApprovalFlow, error) {
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrApprovalFlowNotFound.Withf("approval flow %q not found", id)
	}
	return f, nil
}
