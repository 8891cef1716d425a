package usecase

import (
	"context"
	"errors"
	"rubrox/internal/domain/entities"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestMovementUseCase_RegisterCDP(t *testing.T) {
	t.Run("reserves balance and numbers the cdp", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.sequence.EXPECT().Next(gomock.Any(), "CDP-2025").Return(int64(7), nil)
		f.tx.EXPECT().PutBudgetLine(line)
		f.tx.EXPECT().PutMovement(gomock.Any())
		f.expectCommit(nil)
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, events []entities.DomainEvent) error {
				if len(events) != 2 {
					t.Fatalf("expected reserve and register events, got %d", len(events))
				}
				return nil
			},
		)

		due := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		cdp, err := f.movementUseCase().RegisterCDP(context.Background(), RegisterCDPCommand{
			LineID: line.ID(), Amount: dec(300), Concept: "laptops", UserID: "u", DueDate: &due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cdp.Numbering() != "CDP-2025-0007" || cdp.Type() != entities.MovementTypeCDP {
			t.Fatalf("unexpected movement: %+v", cdp.Snapshot())
		}
		if line.Available().String() != "700.00" || line.Committed().String() != "300.00" {
			t.Fatalf("unexpected balances: available=%s committed=%s", line.Available(), line.Committed())
		}
	})

	t.Run("insufficient balance commits nothing", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 100)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.movementUseCase().RegisterCDP(context.Background(), RegisterCDPCommand{
			LineID: line.ID(), Amount: dec(100.01), Concept: "x", UserID: "u",
		})
		if !errors.Is(err, entities.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
		var ibe *entities.InsufficientBalanceError
		if !errors.As(err, &ibe) || ibe.Available.String() != "100.00" {
			t.Fatalf("expected figures on error, got %v", err)
		}
	})

	t.Run("line not found", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.lines.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

		_, err := f.movementUseCase().RegisterCDP(context.Background(), RegisterCDPCommand{LineID: "nope", Amount: dec(1), Concept: "x"})
		if !errors.Is(err, ErrBudgetLineNotFound) {
			t.Fatalf("expected ErrBudgetLineNotFound, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 100)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis"))

		_, err := f.movementUseCase().RegisterCDP(context.Background(), RegisterCDPCommand{LineID: line.ID(), Amount: dec(1), Concept: "x"})
		if err == nil || err.Error() != "redis" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

func TestMovementUseCase_RegisterCRP(t *testing.T) {
	t.Run("executes against the cdp", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		cdp := testCDP(t, line, 300)
		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)
		f.movements.EXPECT().ListByParent(gomock.Any(), cdp.ID()).Return(nil, nil)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.sequence.EXPECT().Next(gomock.Any(), "CRP-2025").Return(int64(1), nil)
		f.tx.EXPECT().PutBudgetLine(line)
		f.tx.EXPECT().PutMovement(gomock.Any())
		f.expectCommit(nil)
		f.expectDispatch()

		crp, err := f.movementUseCase().RegisterCRP(context.Background(), RegisterCRPCommand{
			CDPID: cdp.ID(), Amount: dec(300), Concept: "invoice 1", UserID: "u",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if crp.ParentID() != cdp.ID() || crp.Numbering() != "CRP-2025-0001" {
			t.Fatalf("unexpected crp: %+v", crp.Snapshot())
		}
		if !line.Committed().IsZero() || line.Executed().String() != "300.00" || line.Available().String() != "700.00" {
			t.Fatalf("unexpected balances: %+v", line.Snapshot())
		}
		if line.ExecutionPercent().StringFixed(2) != "30.00" {
			t.Fatalf("unexpected execution percent: %s", line.ExecutionPercent())
		}
	})

	t.Run("amount above what is left on the cdp", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		cdp := testCDP(t, line, 300)
		prior, _ := entities.NewMovement(line.ID(), entities.MovementTypeCRP, money(t, 250), "c", "CRP-2025-0001", "u", cdp.ID(), nil)
		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)
		f.movements.EXPECT().ListByParent(gomock.Any(), cdp.ID()).Return([]*entities.Movement{prior}, nil)

		_, err := f.movementUseCase().RegisterCRP(context.Background(), RegisterCRPCommand{CDPID: cdp.ID(), Amount: dec(60), Concept: "c"})
		if !errors.Is(err, ErrCRPExceedsCDP) {
			t.Fatalf("expected ErrCRPExceedsCDP, got %v", err)
		}
	})

	t.Run("parent is not a cdp", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		crp, _ := entities.NewMovement("line", entities.MovementTypeCRP, money(t, 10), "c", "CRP-2025-0001", "u", "cdp", nil)
		f.movements.EXPECT().GetByID(gomock.Any(), crp.ID()).Return(crp, nil)

		_, err := f.movementUseCase().RegisterCRP(context.Background(), RegisterCRPCommand{CDPID: crp.ID(), Amount: dec(1), Concept: "c"})
		if !errors.Is(err, ErrNotACDP) {
			t.Fatalf("expected ErrNotACDP, got %v", err)
		}
	})

	t.Run("annulled cdp", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		cdp := testCDP(t, line, 300)
		if err := cdp.Annul("dup", "u"); err != nil {
			t.Fatalf("annul: %v", err)
		}
		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)

		_, err := f.movementUseCase().RegisterCRP(context.Background(), RegisterCRPCommand{CDPID: cdp.ID(), Amount: dec(1), Concept: "c"})
		if !errors.Is(err, entities.ErrMovementNotActive) {
			t.Fatalf("expected ErrMovementNotActive, got %v", err)
		}
	})
}

func TestMovementUseCase_Annul(t *testing.T) {
	t.Run("cdp releases unexecuted remainder", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		cdp := testCDP(t, line, 300)
		if err := line.ExecuteBalance(money(t, 100), "CRP-2025-0001"); err != nil {
			t.Fatalf("execute: %v", err)
		}
		line.ClearEvents()
		crp, _ := entities.NewMovement(line.ID(), entities.MovementTypeCRP, money(t, 100), "c", "CRP-2025-0001", "u", cdp.ID(), nil)

		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)
		f.movements.EXPECT().ListByParent(gomock.Any(), cdp.ID()).Return([]*entities.Movement{crp}, nil)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.tx.EXPECT().PutBudgetLine(line)
		f.tx.EXPECT().PutMovement(cdp)
		f.expectCommit(nil)
		f.expectDispatch()

		got, err := f.movementUseCase().Annul(context.Background(), cdp.ID(), "duplicated", "u")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State() != entities.MovementStateAnnulled || got.Observation() != "duplicated" {
			t.Fatalf("unexpected movement: %+v", got.Snapshot())
		}
		if !line.Committed().IsZero() || line.Available().String() != "900.00" {
			t.Fatalf("unexpected balances: %+v", line.Snapshot())
		}
	})

	t.Run("crp is not annullable", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		crp, _ := entities.NewMovement("line", entities.MovementTypeCRP, money(t, 10), "c", "CRP-2025-0001", "u", "cdp", nil)
		f.movements.EXPECT().GetByID(gomock.Any(), crp.ID()).Return(crp, nil)

		_, err := f.movementUseCase().Annul(context.Background(), crp.ID(), "r", "u")
		if !errors.Is(err, ErrMovementNotAnnullable) {
			t.Fatalf("expected ErrMovementNotAnnullable, got %v", err)
		}
	})

	t.Run("reason required", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		cdp := testCDP(t, line, 300)
		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)

		_, err := f.movementUseCase().Annul(context.Background(), cdp.ID(), " ", "u")
		if !errors.Is(err, entities.ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		f.movements.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

		_, err := f.movementUseCase().Annul(context.Background(), "nope", "r", "u")
		if !errors.Is(err, ErrMovementNotFound) {
			t.Fatalf("expected ErrMovementNotFound, got %v", err)
		}
	})
}

func TestMovementUseCase_ExpireDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("expires due cdps", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		line := testLine(t, "01.01", 2025, 1000)
		past := now.Add(-24 * time.Hour)
		if err := line.ReserveBalance(money(t, 200), "CDP-2025-0001"); err != nil {
			t.Fatalf("reserve: %v", err)
		}
		cdp, _ := entities.NewMovement(line.ID(), entities.MovementTypeCDP, money(t, 200), "c", "CDP-2025-0001", "u", "", &past)

		f.movements.EXPECT().ListDue(gomock.Any(), entities.MovementTypeCDP, now).Return([]*entities.Movement{cdp}, nil)
		f.movements.EXPECT().GetByID(gomock.Any(), cdp.ID()).Return(cdp, nil)
		f.movements.EXPECT().ListByParent(gomock.Any(), cdp.ID()).Return(nil, nil)
		f.lines.EXPECT().GetByID(gomock.Any(), line.ID()).Return(line, nil)
		f.tx.EXPECT().PutBudgetLine(line)
		f.tx.EXPECT().PutMovement(cdp)
		f.expectCommit(nil)
		f.expectDispatch()

		n, err := f.movementUseCase().ExpireDue(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 || cdp.State() != entities.MovementStateExpired {
			t.Fatalf("expected 1 expired cdp, got %d (%s)", n, cdp.State())
		}
		if !line.Committed().IsZero() {
			t.Fatalf("expected commitment released, got %s", line.Committed())
		}
	})

	t.Run("skips movements no longer due and reports failures", func(t *testing.T) {
		f := newFixture(t)
		defer f.ctrl.Finish()
		past := now.Add(-time.Hour)
		annulled, _ := entities.NewMovement("line", entities.MovementTypeCDP, money(t, 1), "c", "CDP-2025-0002", "u", "", &past)
		if err := annulled.Annul("x", "u"); err != nil {
			t.Fatalf("annul: %v", err)
		}
		gone, _ := entities.NewMovement("line", entities.MovementTypeCDP, money(t, 1), "c", "CDP-2025-0003", "u", "", &past)

		f.movements.EXPECT().ListDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*entities.Movement{annulled, gone}, nil)
		f.movements.EXPECT().GetByID(gomock.Any(), annulled.ID()).Return(annulled, nil)
		f.movements.EXPECT().GetByID(gomock.Any(), gone.ID()).Return(nil, errors.New("db"))

		n, err := f.movementUseCase().ExpireDue(context.Background(), now)
		if n != 0 {
			t.Fatalf("expected nothing expired, got %d", n)
		}
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected joined db error, got %v", err)
		}
	})
}
