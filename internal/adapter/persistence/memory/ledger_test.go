package memory_test

import (
	"context"
	"encoding/json"
	"rubrox/internal/adapter/persistence/memory"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu     sync.Mutex
	events []entities.DomainEvent
}

func (c *collector) Dispatch(_ context.Context, events []entities.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, events...)
	return nil
}

func (c *collector) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.EventName())
	}
	return out
}

type ledger struct {
	lines     *usecase.BudgetLineUseCase
	movements *usecase.MovementUseCase
	flows     *usecase.ApprovalFlowUseCase
	events    *collector
}

func newLedger() *ledger {
	store := memory.NewStore()
	lineRepo := memory.NewBudgetLineRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	flowRepo := memory.NewApprovalFlowRepository(store)
	uow := memory.NewUnitOfWork(store)
	events := &collector{}

	lines := usecase.NewBudgetLineUseCase(lineRepo, uow, nil, events, nil)
	movements := usecase.NewMovementUseCase(movementRepo, lineRepo, memory.NewSequence(store), uow, nil, events, nil)
	executor := usecase.NewFlowActionExecutor(lines, movements)
	flows := usecase.NewApprovalFlowUseCase(flowRepo, lineRepo, movementRepo, executor, nil, uow, nil, events, nil)
	return &ledger{lines: lines, movements: movements, flows: flows, events: events}
}

func TestLedger_BudgetLifecycle(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	parent, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "02", Name: "Investment", FiscalYear: 2025, LineType: "investment", FundingSource: "nation", UserID: "admin",
	})
	require.NoError(t, err)
	line, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "02.01", Name: "Roads", FiscalYear: 2025, LineType: "investment", FundingSource: "nation", ParentID: parent.ID(), UserID: "admin",
	})
	require.NoError(t, err)

	_, err = l.lines.AssignBudget(ctx, line.ID(), decimal.NewFromInt(1_000_000), "admin")
	require.NoError(t, err)

	cdp, err := l.movements.RegisterCDP(ctx, usecase.RegisterCDPCommand{
		LineID: line.ID(), Amount: decimal.NewFromInt(300_000), Concept: "paving contract", UserID: "analyst",
	})
	require.NoError(t, err)
	assert.Equal(t, "CDP-2025-0001", cdp.Numbering())

	crp, err := l.movements.RegisterCRP(ctx, usecase.RegisterCRPCommand{
		CDPID: cdp.ID(), Amount: decimal.NewFromInt(100_000), Concept: "first invoice", UserID: "officer",
	})
	require.NoError(t, err)
	assert.Equal(t, "CRP-2025-0001", crp.Numbering())

	_, err = l.movements.RegisterCRP(ctx, usecase.RegisterCRPCommand{
		CDPID: cdp.ID(), Amount: decimal.NewFromInt(200_001), Concept: "too much", UserID: "officer",
	})
	assert.ErrorIs(t, err, usecase.ErrCRPExceedsCDP)

	got, err := l.lines.GetByID(ctx, line.ID())
	require.NoError(t, err)
	assert.Equal(t, "200000.00", got.Committed().String())
	assert.Equal(t, "100000.00", got.Executed().String())
	assert.Equal(t, "700000.00", got.Available().String())
	assert.Equal(t, "10", got.ExecutionPercent().String())

	_, err = l.movements.Annul(ctx, cdp.ID(), "contract cancelled", "officer")
	require.NoError(t, err)
	got, err = l.lines.GetByID(ctx, line.ID())
	require.NoError(t, err)
	assert.True(t, got.Committed().IsZero())
	assert.Equal(t, "900000.00", got.Available().String())

	_, err = l.lines.Close(ctx, line.ID(), "admin")
	require.NoError(t, err)

	tree, err := l.lines.Hierarchy(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, line.ID(), tree[0].Children[0].Line.ID())

	assert.Contains(t, l.events.names(), "movement.annulled")
	assert.Contains(t, l.events.names(), "budget_line.closed")
}

func TestLedger_RejectedRegistrationsKeepNumbering(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	line, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "03", Name: "Health", FiscalYear: 2025, LineType: "operating", FundingSource: "nation", UserID: "admin",
	})
	require.NoError(t, err)
	_, err = l.lines.AssignBudget(ctx, line.ID(), decimal.NewFromInt(100), "admin")
	require.NoError(t, err)

	_, err = l.movements.RegisterCDP(ctx, usecase.RegisterCDPCommand{
		LineID: line.ID(), Amount: decimal.NewFromInt(500), Concept: "too much", UserID: "analyst",
	})
	assert.ErrorIs(t, err, entities.ErrInsufficientBalance)

	cdp, err := l.movements.RegisterCDP(ctx, usecase.RegisterCDPCommand{
		LineID: line.ID(), Amount: decimal.NewFromInt(50), Concept: "supplies", UserID: "analyst",
	})
	require.NoError(t, err)
	assert.Equal(t, "CDP-2025-0001", cdp.Numbering())

	_, err = l.lines.Block(ctx, line.ID(), "audit", "admin")
	require.NoError(t, err)
	_, err = l.movements.RegisterCRP(ctx, usecase.RegisterCRPCommand{
		CDPID: cdp.ID(), Amount: decimal.NewFromInt(10), Concept: "invoice", UserID: "officer",
	})
	assert.ErrorIs(t, err, entities.ErrLineNotActive)

	other, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "04", Name: "Education", FiscalYear: 2025, LineType: "operating", FundingSource: "nation", UserID: "admin",
	})
	require.NoError(t, err)
	_, err = l.lines.AssignBudget(ctx, other.ID(), decimal.NewFromInt(100), "admin")
	require.NoError(t, err)
	second, err := l.movements.RegisterCDP(ctx, usecase.RegisterCDPCommand{
		LineID: other.ID(), Amount: decimal.NewFromInt(40), Concept: "books", UserID: "analyst",
	})
	require.NoError(t, err)
	assert.Equal(t, "CDP-2025-0002", second.Numbering())

	crp, err := l.movements.RegisterCRP(ctx, usecase.RegisterCRPCommand{
		CDPID: second.ID(), Amount: decimal.NewFromInt(40), Concept: "invoice", UserID: "officer",
	})
	require.NoError(t, err)
	assert.Equal(t, "CRP-2025-0001", crp.Numbering())
}

func TestLedger_ExpireDueCDPs(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	line, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "03", Name: "Debt", FiscalYear: 2025, LineType: "debt_service", FundingSource: "credit", UserID: "admin",
	})
	require.NoError(t, err)
	_, err = l.lines.AssignBudget(ctx, line.ID(), decimal.NewFromInt(500), "admin")
	require.NoError(t, err)

	due := time.Now().Add(-time.Minute)
	cdp, err := l.movements.RegisterCDP(ctx, usecase.RegisterCDPCommand{
		LineID: line.ID(), Amount: decimal.NewFromInt(200), Concept: "interest", UserID: "analyst", DueDate: &due,
	})
	require.NoError(t, err)

	n, err := l.movements.ExpireDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, err := l.movements.GetByID(ctx, cdp.ID())
	require.NoError(t, err)
	assert.Equal(t, entities.MovementStateExpired, m.State())

	got, err := l.lines.GetByID(ctx, line.ID())
	require.NoError(t, err)
	assert.Equal(t, "500.00", got.Available().String())

	n, err = l.movements.ExpireDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLedger_ApprovedFlowRegistersCDP(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	line, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "01", Name: "Operations", FiscalYear: 2025, LineType: "operating", FundingSource: "own_resources", UserID: "admin",
	})
	require.NoError(t, err)
	_, err = l.lines.AssignBudget(ctx, line.ID(), decimal.NewFromInt(10_000), "admin")
	require.NoError(t, err)

	payload, _ := json.Marshal(usecase.CDPRegistrationPayload{Amount: decimal.NewFromInt(2_500), Concept: "stationery"})
	flow, err := l.flows.Initiate(ctx, usecase.InitiateFlowCommand{
		FlowType: "cdp_registration", InitiatorID: "analyst-1", Payload: payload, LineID: line.ID(),
	})
	require.NoError(t, err)

	inbox, err := l.flows.Inbox(ctx, usecase.RoleAnalyst)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	_, err = l.flows.Approve(ctx, flow.ID(), "officer-1", usecase.RoleSpendingOfficer, "")
	assert.ErrorIs(t, err, entities.ErrRoleMismatch)

	_, err = l.flows.Approve(ctx, flow.ID(), "analyst-2", usecase.RoleAnalyst, "checked")
	require.NoError(t, err)
	done, err := l.flows.Approve(ctx, flow.ID(), "officer-1", usecase.RoleSpendingOfficer, "go")
	require.NoError(t, err)
	assert.Equal(t, entities.FlowStateApproved, done.State())

	got, err := l.lines.GetByID(ctx, line.ID())
	require.NoError(t, err)
	assert.Equal(t, "2500.00", got.Committed().String())

	movements, err := l.movements.ListByLine(ctx, line.ID())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "CDP-2025-0001", movements[0].Numbering())
	assert.Equal(t, "analyst-1", movements[0].UserID())

	byLine, err := l.flows.ListByLine(ctx, line.ID())
	require.NoError(t, err)
	assert.Len(t, byLine, 1)
}

func TestLedger_FailedFlowActionIsReplayedOnce(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	line, err := l.lines.Create(ctx, usecase.CreateBudgetLineCommand{
		Code: "06", Name: "Transport", FiscalYear: 2025, LineType: "operating", FundingSource: "nation", UserID: "admin",
	})
	require.NoError(t, err)

	payload, _ := json.Marshal(usecase.CDPRegistrationPayload{Amount: decimal.NewFromInt(700), Concept: "fuel"})
	flow, err := l.flows.Initiate(ctx, usecase.InitiateFlowCommand{
		FlowType: "cdp_registration", InitiatorID: "analyst-1", Payload: payload, LineID: line.ID(),
	})
	require.NoError(t, err)
	_, err = l.flows.Approve(ctx, flow.ID(), "analyst-2", usecase.RoleAnalyst, "")
	require.NoError(t, err)

	approved, err := l.flows.Approve(ctx, flow.ID(), "officer-1", usecase.RoleSpendingOfficer, "")
	assert.ErrorIs(t, err, usecase.ErrFlowActionFailed)
	assert.ErrorIs(t, err, entities.ErrInsufficientBalance)
	require.NotNil(t, approved)
	assert.Equal(t, entities.FlowStateApproved, approved.State())
	assert.False(t, approved.ActionApplied())

	_, err = l.lines.AssignBudget(ctx, line.ID(), decimal.NewFromInt(1_000), "admin")
	require.NoError(t, err)

	replayed, err := l.flows.ExecuteAction(ctx, flow.ID())
	require.NoError(t, err)
	assert.True(t, replayed.ActionApplied())

	_, err = l.flows.ExecuteAction(ctx, flow.ID())
	assert.ErrorIs(t, err, entities.ErrFlowActionApplied)

	stored, err := l.flows.GetByID(ctx, flow.ID())
	require.NoError(t, err)
	assert.True(t, stored.ActionApplied())

	movements, err := l.movements.ListByLine(ctx, line.ID())
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "CDP-2025-0001", movements[0].Numbering())
	assert.Contains(t, l.events.names(), "approval_flow.action_applied")
}
