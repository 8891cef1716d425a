package usecase

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"strconv"

	"go.uber.org/zap"
)

type eventSource interface {
	Events() []entities.DomainEvent
	ClearEvents()
}

// writer runs load -> mutate -> commit -> dispatch for the command use cases.
type writer struct {
	uow        interfaces.IUnitOfWork
	locker     interfaces.ILocker
	dispatcher interfaces.IEventDispatcher
	logger     *zap.Logger
}

func newWriter(uow interfaces.IUnitOfWork, locker interfaces.ILocker, dispatcher interfaces.IEventDispatcher, logger *zap.Logger) writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return writer{uow: uow, locker: locker, dispatcher: dispatcher, logger: logger}
}

func (w writer) withLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if w.locker == nil {
		return fn(ctx)
	}
	return w.locker.WithLock(ctx, key, fn)
}

// commit stages the aggregates, commits them, then dispatches their events.
// Nothing is dispatched when the commit fails. A dispatch failure is logged
// and does not fail the command.
func (w writer) commit(ctx context.Context, stage func(tx interfaces.ITransaction), sources ...eventSource) error {
	tx := w.uow.Begin(ctx)
	stage(tx)
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	var events []entities.DomainEvent
	for _, s := range sources {
		events = append(events, s.Events()...)
	}
	if len(events) > 0 && w.dispatcher != nil {
		if err := w.dispatcher.Dispatch(ctx, events); err != nil {
			w.logger.Warn("[events][usecase] dispatch failed after commit",
				zap.Int("events", len(events)),
				zap.String("first_event", events[0].EventName()),
				zap.Error(err))
		}
	}
	for _, s := range sources {
		s.ClearEvents()
	}
	return nil
}

func lineLockKey(id string) string     { return "budget_line:" + id }
func movementLockKey(id string) string { return "movement:" + id }
func flowLockKey(id string) string     { return "approval_flow:" + id }

func lineCodeLockKey(code entities.BudgetCode, year entities.FiscalYear) string {
	return "budget_code:" + code.String() + ":" + strconv.Itoa(year.Int())
}
