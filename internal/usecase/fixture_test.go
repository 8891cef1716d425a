package usecase

import (
	"context"
	"rubrox/internal/domain/entities"
	mock_interfaces "rubrox/internal/usecase/interfaces/mocks"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl       *gomock.Controller
	lines      *mock_interfaces.MockIBudgetLineRepository
	movements  *mock_interfaces.MockIMovementRepository
	flows      *mock_interfaces.MockIApprovalFlowRepository
	uow        *mock_interfaces.MockIUnitOfWork
	tx         *mock_interfaces.MockITransaction
	locker     *mock_interfaces.MockILocker
	sequence   *mock_interfaces.MockISequence
	dispatcher *mock_interfaces.MockIEventDispatcher
	executor   *mock_interfaces.MockIFlowActionExecutor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:       ctrl,
		lines:      mock_interfaces.NewMockIBudgetLineRepository(ctrl),
		movements:  mock_interfaces.NewMockIMovementRepository(ctrl),
		flows:      mock_interfaces.NewMockIApprovalFlowRepository(ctrl),
		uow:        mock_interfaces.NewMockIUnitOfWork(ctrl),
		tx:         mock_interfaces.NewMockITransaction(ctrl),
		locker:     mock_interfaces.NewMockILocker(ctrl),
		sequence:   mock_interfaces.NewMockISequence(ctrl),
		dispatcher: mock_interfaces.NewMockIEventDispatcher(ctrl),
		executor:   mock_interfaces.NewMockIFlowActionExecutor(ctrl),
	}
	f.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return f
}

func (f *fixture) lineUseCase() *BudgetLineUseCase {
	return NewBudgetLineUseCase(f.lines, f.uow, f.locker, f.dispatcher, nil)
}

func (f *fixture) movementUseCase() *MovementUseCase {
	return NewMovementUseCase(f.movements, f.lines, f.sequence, f.uow, f.locker, f.dispatcher, nil)
}

func (f *fixture) flowUseCase() *ApprovalFlowUseCase {
	return NewApprovalFlowUseCase(f.flows, f.lines, f.movements, f.executor, nil, f.uow, f.locker, f.dispatcher, nil)
}

// expectCommit expects one transaction whose commit returns err.
func (f *fixture) expectCommit(err error) {
	f.uow.EXPECT().Begin(gomock.Any()).Return(f.tx)
	f.tx.EXPECT().Commit(gomock.Any()).Return(err)
}

func (f *fixture) expectDispatch() {
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
}

func testLine(t *testing.T, code string, year int, initial float64) *entities.BudgetLine {
	t.Helper()
	c, err := entities.NewBudgetCode(code)
	if err != nil {
		t.Fatalf("code: %v", err)
	}
	l, err := entities.NewBudgetLine(c, "line "+code, "", entities.FiscalYear(year), entities.LineTypeInvestment, entities.FundingSourceNation, "", "creator")
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	if initial > 0 {
		if err := l.AssignBudget(money(t, initial), "creator"); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}
	l.ClearEvents()
	return l
}

func testCDP(t *testing.T, line *entities.BudgetLine, amount float64) *entities.Movement {
	t.Helper()
	if err := line.ReserveBalance(money(t, amount), "CDP-2025-0001"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	m, err := entities.NewMovement(line.ID(), entities.MovementTypeCDP, money(t, amount), "concept", "CDP-2025-0001", "u", "", nil)
	if err != nil {
		t.Fatalf("movement: %v", err)
	}
	line.ClearEvents()
	m.ClearEvents()
	return m
}

func money(t *testing.T, v float64) entities.Money {
	t.Helper()
	m, err := entities.NewMoneyFromFloat(v)
	if err != nil {
		t.Fatalf("money: %v", err)
	}
	return m
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
