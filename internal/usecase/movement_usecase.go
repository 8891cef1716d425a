package usecase

import (
	"context"
	"errors"
	"rubrox/internal/domain/entities"
	"rubrox/internal/domain/numbering"
	"rubrox/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RegisterCDPCommand struct {
	LineID  string
	Amount  decimal.Decimal
	Concept string
	UserID  string
	DueDate *time.Time
}

type RegisterCRPCommand struct {
	CDPID   string
	Amount  decimal.Decimal
	Concept string
	UserID  string
}

// IMovementUseCase exposes CDP/CRP registration, annulment and expiry.
//
//   - CDP (certificado de disponibilidad) reserves available balance on a line
//   - CRP (certificado de registro) executes part of a CDP's commitment
type IMovementUseCase interface {
	RegisterCDP(ctx context.Context, cmd RegisterCDPCommand) (*entities.Movement, error)
	RegisterCRP(ctx context.Context, cmd RegisterCRPCommand) (*entities.Movement, error)
	Annul(ctx context.Context, movementID, reason, userID string) (*entities.Movement, error)
	ExpireDue(ctx context.Context, now time.Time) (int, error)
	GetByID(ctx context.Context, id string) (*entities.Movement, error)
	ListByLine(ctx context.Context, lineID string) ([]*entities.Movement, error)
}

type MovementUseCase struct {
	writer
	repo     interfaces.IMovementRepository
	lineRepo interfaces.IBudgetLineRepository
	sequence interfaces.ISequence
}

var _ IMovementUseCase = (*MovementUseCase)(nil)

func NewMovementUseCase(
	repo interfaces.IMovementRepository,
	lineRepo interfaces.IBudgetLineRepository,
	sequence interfaces.ISequence,
	uow interfaces.IUnitOfWork,
	locker interfaces.ILocker,
	dispatcher interfaces.IEventDispatcher,
	logger *zap.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		writer:   newWriter(uow, locker, dispatcher, logger),
		repo:     repo,
		lineRepo: lineRepo,
		sequence: sequence,
	}
}

func (u *MovementUseCase) RegisterCDP(ctx context.Context, cmd RegisterCDPCommand) (*entities.Movement, error) {
	lineID := strings.TrimSpace(cmd.LineID)
	if lineID == "" {
		return nil, ErrInvalidID
	}
	amount, err := entities.NewMoney(cmd.Amount)
	if err != nil {
		return nil, err
	}

	var cdp *entities.Movement
	err = u.withLock(ctx, lineLockKey(lineID), func(ctx context.Context) error {
		line, err := u.loadLine(ctx, lineID)
		if err != nil {
			return err
		}
		// Rejected registrations must not consume a sequence value.
		if err := line.CanReserve(amount); err != nil {
			return err
		}
		number, err := u.nextNumber(ctx, entities.MovementTypeCDP, line.FiscalYear())
		if err != nil {
			return err
		}
		if err := line.ReserveBalance(amount, number); err != nil {
			return err
		}
		m, err := entities.NewMovement(line.ID(), entities.MovementTypeCDP, amount, cmd.Concept, number, cmd.UserID, "", cmd.DueDate)
		if err != nil {
			return err
		}

		err = u.commit(ctx, func(tx interfaces.ITransaction) {
			tx.PutBudgetLine(line)
			tx.PutMovement(m)
		}, line, m)
		if err != nil {
			return err
		}
		cdp = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[movement][usecase] cdp registered",
		zap.String("movement_id", cdp.ID()),
		zap.String("numbering", cdp.Numbering()),
		zap.String("line_id", cdp.LineID()),
		zap.String("amount", cdp.Amount().String()))
	return cdp, nil
}

func (u *MovementUseCase) RegisterCRP(ctx context.Context, cmd RegisterCRPCommand) (*entities.Movement, error) {
	cdpID := strings.TrimSpace(cmd.CDPID)
	if cdpID == "" {
		return nil, ErrInvalidID
	}
	amount, err := entities.NewMoney(cmd.Amount)
	if err != nil {
		return nil, err
	}

	var crp *entities.Movement
	err = u.withLock(ctx, movementLockKey(cdpID), func(ctx context.Context) error {
		cdp, err := u.loadMovement(ctx, cdpID)
		if err != nil {
			return err
		}
		if cdp.Type() != entities.MovementTypeCDP {
			return ErrNotACDP.Withf("movement %q is a %s, not a CDP", cdp.Numbering(), cdp.Type())
		}
		if !cdp.IsActive() {
			return entities.ErrMovementNotActive.Withf("CDP %q is %s", cdp.Numbering(), cdp.State())
		}

		remaining, err := u.unregisteredBalance(ctx, cdp)
		if err != nil {
			return err
		}
		if amount.GreaterThan(remaining) {
			return ErrCRPExceedsCDP.Withf("CRP amount %s exceeds the %s left on CDP %q", amount.String(), remaining.String(), cdp.Numbering())
		}

		return u.withLock(ctx, lineLockKey(cdp.LineID()), func(ctx context.Context) error {
			line, err := u.loadLine(ctx, cdp.LineID())
			if err != nil {
				return err
			}
			if err := line.CanExecute(amount); err != nil {
				return err
			}
			number, err := u.nextNumber(ctx, entities.MovementTypeCRP, line.FiscalYear())
			if err != nil {
				return err
			}
			if err := line.ExecuteBalance(amount, number); err != nil {
				return err
			}
			m, err := entities.NewMovement(line.ID(), entities.MovementTypeCRP, amount, cmd.Concept, number, cmd.UserID, cdp.ID(), nil)
			if err != nil {
				return err
			}

			err = u.commit(ctx, func(tx interfaces.ITransaction) {
				tx.PutBudgetLine(line)
				tx.PutMovement(m)
			}, line, m)
			if err != nil {
				return err
			}
			crp = m
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[movement][usecase] crp registered",
		zap.String("movement_id", crp.ID()),
		zap.String("numbering", crp.Numbering()),
		zap.String("cdp_id", crp.ParentID()),
		zap.String("amount", crp.Amount().String()))
	return crp, nil
}

// Annul annuls a CDP and releases the part of its commitment no CRP has executed.
// Other movement types cannot be annulled: a CRP has already executed budget.
func (u *MovementUseCase) Annul(ctx context.Context, movementID, reason, userID string) (*entities.Movement, error) {
	movementID = strings.TrimSpace(movementID)
	if movementID == "" {
		return nil, ErrInvalidID
	}

	var annulled *entities.Movement
	err := u.withLock(ctx, movementLockKey(movementID), func(ctx context.Context) error {
		m, err := u.loadMovement(ctx, movementID)
		if err != nil {
			return err
		}
		if m.Type() != entities.MovementTypeCDP {
			return ErrMovementNotAnnullable.Withf("movement %q is a %s, only CDP movements can be annulled", m.Numbering(), m.Type())
		}
		if err := m.Annul(reason, userID); err != nil {
			return err
		}
		if err := u.releaseRemainder(ctx, m, "annulment of "+m.Numbering()+": "+m.Observation()); err != nil {
			return err
		}
		annulled = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[movement][usecase] annulled",
		zap.String("movement_id", annulled.ID()),
		zap.String("numbering", annulled.Numbering()))
	return annulled, nil
}

// ExpireDue expires every active CDP whose due date has passed and releases
// its remaining commitment. Failures on one CDP do not stop the sweep.
func (u *MovementUseCase) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	due, err := u.repo.ListDue(ctx, entities.MovementTypeCDP, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	var errs []error
	for _, candidate := range due {
		err := u.withLock(ctx, movementLockKey(candidate.ID()), func(ctx context.Context) error {
			m, err := u.loadMovement(ctx, candidate.ID())
			if err != nil {
				return err
			}
			if !m.IsDue(now) {
				return nil
			}
			if err := m.MarkExpired(); err != nil {
				return err
			}
			if err := u.releaseRemainder(ctx, m, "expiry of "+m.Numbering()); err != nil {
				return err
			}
			expired++
			return nil
		})
		if err != nil {
			u.logger.Warn("[movement][usecase] expire failed",
				zap.String("movement_id", candidate.ID()),
				zap.Error(err))
			errs = append(errs, err)
		}
	}

	if expired > 0 {
		u.logger.Info("[movement][usecase] expiry sweep done", zap.Int("expired", expired), zap.Int("candidates", len(due)))
	}
	return expired, errors.Join(errs...)
}

func (u *MovementUseCase) GetByID(ctx context.Context, id string) (*entities.Movement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return u.loadMovement(ctx, id)
}

func (u *MovementUseCase) ListByLine(ctx context.Context, lineID string) ([]*entities.Movement, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidID
	}
	if _, err := u.loadLine(ctx, lineID); err != nil {
		return nil, err
	}
	return u.repo.ListByLine(ctx, lineID)
}

// releaseRemainder releases the unexecuted part of a CDP on its line and
// commits the line together with the CDP. Must run under the CDP lock.
func (u *MovementUseCase) releaseRemainder(ctx context.Context, cdp *entities.Movement, reason string) error {
	remaining, err := u.unregisteredBalance(ctx, cdp)
	if err != nil {
		return err
	}

	return u.withLock(ctx, lineLockKey(cdp.LineID()), func(ctx context.Context) error {
		line, err := u.loadLine(ctx, cdp.LineID())
		if err != nil {
			return err
		}
		if remaining.IsPositive() {
			if err := line.ReleaseBalance(remaining, reason); err != nil {
				return err
			}
		}
		return u.commit(ctx, func(tx interfaces.ITransaction) {
			tx.PutBudgetLine(line)
			tx.PutMovement(cdp)
		}, line, cdp)
	})
}

// unregisteredBalance is the CDP amount minus its active CRPs.
func (u *MovementUseCase) unregisteredBalance(ctx context.Context, cdp *entities.Movement) (entities.Money, error) {
	children, err := u.repo.ListByParent(ctx, cdp.ID())
	if err != nil {
		return entities.Money{}, err
	}
	registered := entities.ZeroMoney()
	for _, c := range children {
		if c.Type() == entities.MovementTypeCRP && c.IsActive() {
			registered = registered.Add(c.Amount())
		}
	}
	remaining, err := cdp.Amount().Subtract(registered)
	if err != nil {
		return entities.ZeroMoney(), nil
	}
	return remaining, nil
}

func (u *MovementUseCase) nextNumber(ctx context.Context, t entities.MovementType, year entities.FiscalYear) (string, error) {
	seq, err := u.sequence.Next(ctx, numbering.Key(t, year))
	if err != nil {
		return "", err
	}
	return numbering.Format(t, year, seq)
}

func (u *MovementUseCase) loadLine(ctx context.Context, id string) (*entities.BudgetLine, error) {
	line, err := u.lineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrBudgetLineNotFound.Withf("budget line %q not found", id)
	}
	return line, nil
}

func (u *MovementUseCase) loadMovement(ctx context.Context, id string) (*entities.Movement, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovementNotFound.Withf("movement %q not found", id)
	}
	return m, nil
}
