package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"rubrox/internal/domain/entities"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestApprovalFlowUseCase_Initiate(t *testing.T) {
	t.Run("default role policy", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01", 2025, 0)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.tx.EXPECT().PutApprovalFlow(gomock.Any())
		f.expectCommit(nil)
		f.expectDispatch()

		flow, err := f.flowUseCase().Initiate(context.Background(), InitiateFlowCommand{
			FlowType:    "budget_assignment",
			InitiatorID: "analyst-1",
			Payload:     json.RawMessage(`{"amount":1000}`),
			LineID:      line.ID(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		steps := flow.Steps()
		if len(steps) != 3 || steps[0].RequiredRole != RoleAnalyst || steps[2].RequiredRole != RoleSpendingOfficer {
			t.Fatalf("unexpected steps: %+v", steps)
		}
	})

	t.Run("configured override decides the steps", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.tx.EXPECT().PutApprovalFlow(gomock.Any())
		f.expectCommit(nil)
		f.expectDispatch()

		policy, err := DefaultRolePolicy().WithOverrides(map[string][]string{"transfer": {RoleAuditor}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc := NewApprovalFlowUseCase(f.flows, f.lines, f.movements, f.executor, policy, f.uow, f.locker, f.dispatcher, nil)
		flow, err := uc.Initiate(context.Background(), InitiateFlowCommand{
			FlowType: "transfer",
			Payload:  json.RawMessage(`{"step_roles":["mallory"]}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if steps := flow.Steps(); len(steps) != 1 || steps[0].RequiredRole != RoleAuditor {
			t.Fatalf("unexpected steps: %+v", steps)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewApprovalFlowUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		for _, raw := range []string{"", "{", "not json"} {
			_, err := uc.Initiate(context.Background(), InitiateFlowCommand{FlowType: "transfer", Payload: json.RawMessage(raw)})
			if !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload for %q, got %v", raw, err)
			}
		}
	})

	t.Run("invalid flow type", func(t *testing.T) {
		uc := NewApprovalFlowUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Initiate(context.Background(), InitiateFlowCommand{FlowType: "bribe", Payload: json.RawMessage(`{}`)})
		if !errors.Is(err, entities.ErrInvalidFlowType) {
			t.Fatalf("expected ErrInvalidFlowType, got %v", err)
		}
	})

	t.Run("unknown movement", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.movements.EXPECT().GetByID(gomock.Any(), "m1").Return(nil, nil)

		_, err := f.flowUseCase().Initiate(context.Background(), InitiateFlowCommand{
			FlowType: "movement_annulment", Payload: json.RawMessage(`{}`), MovementID: "m1",
		})
		if !errors.Is(err, ErrMovementNotFound) {
			t.Fatalf("expected ErrMovementNotFound, got %v", err)
		}
	})
}

func TestApprovalFlowUseCase_Actions(t *testing.T) {
	newFlow := func(t *testing.T, roles ...string) *entities.ApprovalFlow {
		t.Helper()
		flow, err := entities.NewApprovalFlow(entities.FlowTypeLineClosure, "initiator", `{}`, roles, "line-1", "")
		if err != nil {
			t.Fatalf("flow: %v", err)
		}
		flow.ClearEvents()
		return flow
	}

	t.Run("intermediate approval does not execute", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor, RoleBudgetAdmin)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.expectDispatch()

		got, err := f.flowUseCase().Approve(context.Background(), flow.ID(), "s1", RoleSupervisor, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State() != entities.FlowStateInReview || got.CurrentStep() != 2 {
			t.Fatalf("unexpected flow state %s step %d", got.State(), got.CurrentStep())
		}
	})

	t.Run("final approval executes the action", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow).Times(2)
		f.expectCommit(nil)
		f.expectDispatch()
		f.executor.EXPECT().Execute(gomock.Any(), flow).Return(nil)
		f.expectCommit(nil)
		f.expectDispatch()

		got, err := f.flowUseCase().Approve(context.Background(), flow.ID(), "s1", RoleSupervisor, "ok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State() != entities.FlowStateApproved || !got.ActionApplied() {
			t.Fatalf("expected approved and applied, got %s applied=%v", got.State(), got.ActionApplied())
		}
	})

	t.Run("action failure is reported", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.expectDispatch()
		f.executor.EXPECT().Execute(gomock.Any(), flow).Return(entities.ErrLineHasCommitted)

		got, err := f.flowUseCase().Approve(context.Background(), flow.ID(), "s1", RoleSupervisor, "")
		if !errors.Is(err, ErrFlowActionFailed) || !errors.Is(err, entities.ErrLineHasCommitted) {
			t.Fatalf("expected wrapped action failure, got %v", err)
		}
		if got == nil || got.State() != entities.FlowStateApproved || got.ActionApplied() {
			t.Fatalf("expected flow to stay approved and unapplied")
		}
	})

	t.Run("action failure is logged with the flow id", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.expectDispatch()
		f.executor.EXPECT().Execute(gomock.Any(), flow).Return(entities.ErrLineHasCommitted)

		core, logs := observer.New(zap.ErrorLevel)
		uc := NewApprovalFlowUseCase(f.flows, f.lines, f.movements, f.executor, nil, f.uow, f.locker, f.dispatcher, zap.New(core))
		_, _ = uc.Approve(context.Background(), flow.ID(), "s1", RoleSupervisor, "")

		entries := logs.All()
		if len(entries) != 1 || entries[0].ContextMap()["flow_id"] != flow.ID() {
			t.Fatalf("expected one error log carrying the flow id, got %+v", entries)
		}
	})

	approved := func(t *testing.T) *entities.ApprovalFlow {
		t.Helper()
		flow := newFlow(t, RoleSupervisor)
		if err := flow.Approve("s1", RoleSupervisor, ""); err != nil {
			t.Fatalf("approve: %v", err)
		}
		flow.ClearEvents()
		return flow
	}

	t.Run("execute replays a failed action", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := approved(t)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.executor.EXPECT().Execute(gomock.Any(), flow).Return(nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, events []entities.DomainEvent) error {
				if len(events) != 1 || events[0].EventName() != "approval_flow.action_applied" {
					t.Fatalf("unexpected events: %+v", events)
				}
				return nil
			})

		got, err := f.flowUseCase().ExecuteAction(context.Background(), flow.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ActionApplied() {
			t.Fatalf("expected action applied")
		}
	})

	t.Run("execute failure keeps the flow replayable", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := approved(t)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.executor.EXPECT().Execute(gomock.Any(), flow).Return(entities.ErrLineNotActive)

		got, err := f.flowUseCase().ExecuteAction(context.Background(), flow.ID())
		if !errors.Is(err, ErrFlowActionFailed) || !errors.Is(err, entities.ErrLineNotActive) {
			t.Fatalf("expected wrapped action failure, got %v", err)
		}
		if got == nil || got.ActionApplied() {
			t.Fatalf("expected unapplied flow")
		}
	})

	t.Run("execute refuses an applied flow", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := approved(t)
		if err := flow.MarkActionApplied(); err != nil {
			t.Fatalf("mark: %v", err)
		}
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)

		_, err := f.flowUseCase().ExecuteAction(context.Background(), flow.ID())
		if !errors.Is(err, entities.ErrFlowActionApplied) {
			t.Fatalf("expected ErrFlowActionApplied, got %v", err)
		}
	})

	t.Run("execute refuses a pending flow", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)

		_, err := f.flowUseCase().ExecuteAction(context.Background(), flow.ID())
		if !errors.Is(err, entities.ErrFlowNotApproved) {
			t.Fatalf("expected ErrFlowNotApproved, got %v", err)
		}
	})

	t.Run("execute without executor", func(t *testing.T) {
		uc := NewApprovalFlowUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.ExecuteAction(context.Background(), "flow-1")
		if !errors.Is(err, ErrNoFlowExecutor) {
			t.Fatalf("expected ErrNoFlowExecutor, got %v", err)
		}
	})

	t.Run("role mismatch commits nothing", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)

		_, err := f.flowUseCase().Approve(context.Background(), flow.ID(), "a1", RoleAnalyst, "")
		if !errors.Is(err, entities.ErrRoleMismatch) || !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrRoleMismatch, got %v", err)
		}
	})

	t.Run("reject", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor)
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.expectDispatch()

		got, err := f.flowUseCase().Reject(context.Background(), flow.ID(), "s1", RoleSupervisor, "incomplete")
		if err != nil || got.State() != entities.FlowStateRejected {
			t.Fatalf("unexpected result: %v", err)
		}
	})

	t.Run("return", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		flow := newFlow(t, RoleSupervisor, RoleBudgetAdmin)
		if err := flow.Approve("s1", RoleSupervisor, ""); err != nil {
			t.Fatalf("approve: %v", err)
		}
		flow.ClearEvents()
		f.flows.EXPECT().GetByID(gomock.Any(), flow.ID()).Return(flow, nil)
		f.tx.EXPECT().PutApprovalFlow(flow)
		f.expectCommit(nil)
		f.expectDispatch()

		got, err := f.flowUseCase().Return(context.Background(), flow.ID(), "b1", RoleBudgetAdmin, "fix")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State() != entities.FlowStateReturned || got.CurrentStep() != 1 {
			t.Fatalf("unexpected flow state %s step %d", got.State(), got.CurrentStep())
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.flows.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

		_, err := f.flowUseCase().Approve(context.Background(), "nope", "a", "r", "")
		if !errors.Is(err, ErrApprovalFlowNotFound) {
			t.Fatalf("expected ErrApprovalFlowNotFound, got %v", err)
		}
	})
}

func TestApprovalFlowUseCase_Queries(t *testing.T) {
	t.Run("inbox by role", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.flows.EXPECT().ListActionableByRole(gomock.Any(), RoleSupervisor).Return([]*entities.ApprovalFlow{}, nil)

		flows, err := f.flowUseCase().Inbox(context.Background(), " supervisor ")
		if err != nil || flows == nil {
			t.Fatalf("unexpected result: %v %v", flows, err)
		}
	})

	t.Run("inbox without role is empty", func(t *testing.T) {
		uc := NewApprovalFlowUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		flows, err := uc.Inbox(context.Background(), "")
		if err != nil || len(flows) != 0 {
			t.Fatalf("unexpected result: %v %v", flows, err)
		}
	})

	t.Run("list by invalid state", func(t *testing.T) {
		uc := NewApprovalFlowUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.ListByState(context.Background(), "lost")
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestRolePolicy(t *testing.T) {
	t.Run("defaults cover every flow type", func(t *testing.T) {
		p := DefaultRolePolicy()
		for _, ft := range entities.FlowTypes {
			if len(p.StepsFor(ft)) == 0 {
				t.Fatalf("no roles for %s", ft)
			}
		}
	})

	t.Run("overrides", func(t *testing.T) {
		p, err := DefaultRolePolicy().WithOverrides(map[string][]string{"line_closure": {RoleAuditor}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := p.StepsFor(entities.FlowTypeLineClosure); len(got) != 1 || got[0] != RoleAuditor {
			t.Fatalf("unexpected roles: %v", got)
		}
		if got := DefaultRolePolicy().StepsFor(entities.FlowTypeLineClosure); len(got) != 2 {
			t.Fatalf("defaults must not change: %v", got)
		}
	})

	t.Run("unknown flow type", func(t *testing.T) {
		_, err := DefaultRolePolicy().WithOverrides(map[string][]string{"nope": {"x"}})
		if !errors.Is(err, entities.ErrInvalidFlowType) {
			t.Fatalf("expected ErrInvalidFlowType, got %v", err)
		}
	})
}
