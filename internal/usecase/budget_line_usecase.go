package usecase

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateBudgetLineCommand struct {
	Code          string
	Name          string
	Description   string
	FiscalYear    int
	LineType      string
	FundingSource string
	ParentID      string
	UserID        string
}

// LineNode is a budget line with its children, nested through parent pointers.
type LineNode struct {
	Line     *entities.BudgetLine
	Children []*LineNode
}

// IBudgetLineUseCase exposes budget line (rubro) operations.
type IBudgetLineUseCase interface {
	Create(ctx context.Context, cmd CreateBudgetLineCommand) (*entities.BudgetLine, error)
	AssignBudget(ctx context.Context, lineID string, amount decimal.Decimal, userID string) (*entities.BudgetLine, error)
	Close(ctx context.Context, lineID, userID string) (*entities.BudgetLine, error)
	Block(ctx context.Context, lineID, reason, userID string) (*entities.BudgetLine, error)
	GetByID(ctx context.Context, id string) (*entities.BudgetLine, error)
	ListByFiscalYear(ctx context.Context, year int, state entities.LineState) ([]*entities.BudgetLine, error)
	ListChildren(ctx context.Context, id string) ([]*entities.BudgetLine, error)
	Hierarchy(ctx context.Context, year int) ([]*LineNode, error)
}

type BudgetLineUseCase struct {
	writer
	repo interfaces.IBudgetLineRepository
}

var _ IBudgetLineUseCase = (*BudgetLineUseCase)(nil)

func NewBudgetLineUseCase(
	repo interfaces.IBudgetLineRepository,
	uow interfaces.IUnitOfWork,
	locker interfaces.ILocker,
	dispatcher interfaces.IEventDispatcher,
	logger *zap.Logger,
) *BudgetLineUseCase {
	return &BudgetLineUseCase{
		writer: newWriter(uow, locker, dispatcher, logger),
		repo:   repo,
	}
}

func (u *BudgetLineUseCase) Create(ctx context.Context, cmd CreateBudgetLineCommand) (*entities.BudgetLine, error) {
	code, err := entities.NewBudgetCode(cmd.Code)
	if err != nil {
		return nil, err
	}
	year, err := entities.NewFiscalYear(cmd.FiscalYear)
	if err != nil {
		return nil, err
	}
	source, err := entities.ParseFundingSource(cmd.FundingSource)
	if err != nil {
		return nil, err
	}
	lineType, err := entities.ParseLineType(cmd.LineType)
	if err != nil {
		return nil, err
	}
	parentID := strings.TrimSpace(cmd.ParentID)

	var created *entities.BudgetLine
	err = u.withLock(ctx, lineCodeLockKey(code, year), func(ctx context.Context) error {
		existing, err := u.repo.GetByCode(ctx, code, year)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrBudgetLineExists.Withf("a budget line with code %q already exists in fiscal year %d", code.String(), year.Int())
		}

		if parentID == "" {
			line, err := entities.NewBudgetLine(code, cmd.Name, cmd.Description, year, lineType, source, "", cmd.UserID)
			if err != nil {
				return err
			}
			if err := u.commit(ctx, func(tx interfaces.ITransaction) { tx.PutBudgetLine(line) }, line); err != nil {
				return err
			}
			created = line
			return nil
		}

		return u.withLock(ctx, lineLockKey(parentID), func(ctx context.Context) error {
			parent, err := u.repo.GetByID(ctx, parentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return ErrParentLineNotFound.Withf("parent budget line %q not found", parentID)
			}
			if parent.FiscalYear() != year {
				return ErrParentYearMismatch.Withf("parent budget line belongs to fiscal year %d, not %d", parent.FiscalYear().Int(), year.Int())
			}

			line, err := entities.NewBudgetLine(code, cmd.Name, cmd.Description, year, lineType, source, parent.ID(), cmd.UserID)
			if err != nil {
				return err
			}
			parent.AddChild(line.ID())

			err = u.commit(ctx, func(tx interfaces.ITransaction) {
				tx.PutBudgetLine(line)
				tx.PutBudgetLine(parent)
			}, line, parent)
			if err != nil {
				return err
			}
			created = line
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[budget-line][usecase] created",
		zap.String("line_id", created.ID()),
		zap.String("code", created.Code().String()),
		zap.Int("fiscal_year", created.FiscalYear().Int()))
	return created, nil
}

func (u *BudgetLineUseCase) AssignBudget(ctx context.Context, lineID string, amount decimal.Decimal, userID string) (*entities.BudgetLine, error) {
	money, err := entities.NewMoney(amount)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, lineID, func(l *entities.BudgetLine) error {
		return l.AssignBudget(money, userID)
	})
}

func (u *BudgetLineUseCase) Close(ctx context.Context, lineID, userID string) (*entities.BudgetLine, error) {
	return u.mutate(ctx, lineID, func(l *entities.BudgetLine) error {
		return l.Close(userID)
	})
}

func (u *BudgetLineUseCase) Block(ctx context.Context, lineID, reason, userID string) (*entities.BudgetLine, error) {
	return u.mutate(ctx, lineID, func(l *entities.BudgetLine) error {
		return l.Block(reason, userID)
	})
}

// mutate applies one domain operation to a line under its lock.
func (u *BudgetLineUseCase) mutate(ctx context.Context, lineID string, op func(l *entities.BudgetLine) error) (*entities.BudgetLine, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, ErrInvalidID
	}

	var line *entities.BudgetLine
	err := u.withLock(ctx, lineLockKey(lineID), func(ctx context.Context) error {
		l, err := u.repo.GetByID(ctx, lineID)
		if err != nil {
			return err
		}
		if l == nil {
			return ErrBudgetLineNotFound
		}
		if err := op(l); err != nil {
			return err
		}
		if err := u.commit(ctx, func(tx interfaces.ITransaction) { tx.PutBudgetLine(l) }, l); err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (u *BudgetLineUseCase) GetByID(ctx context.Context, id string) (*entities.BudgetLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrBudgetLineNotFound
	}
	return l, nil
}

// ListByFiscalYear returns the lines of a year ordered by code. An empty state lists all.
func (u *BudgetLineUseCase) ListByFiscalYear(ctx context.Context, year int, state entities.LineState) ([]*entities.BudgetLine, error) {
	fy, err := entities.NewFiscalYear(year)
	if err != nil {
		return nil, err
	}
	lines, err := u.repo.ListByFiscalYear(ctx, fy)
	if err != nil {
		return nil, err
	}
	sortByCode(lines)
	if state == "" {
		return lines, nil
	}
	out := make([]*entities.BudgetLine, 0, len(lines))
	for _, l := range lines {
		if l.State() == state {
			out = append(out, l)
		}
	}
	return out, nil
}

func (u *BudgetLineUseCase) ListChildren(ctx context.Context, id string) ([]*entities.BudgetLine, error) {
	parent, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	children, err := u.repo.ListChildren(ctx, parent.ID())
	if err != nil {
		return nil, err
	}
	sortByCode(children)
	return children, nil
}

// Hierarchy builds the tree of a fiscal year from each line's parent pointer.
// Lines whose parent is not part of the year are treated as roots.
func (u *BudgetLineUseCase) Hierarchy(ctx context.Context, year int) ([]*LineNode, error) {
	lines, err := u.ListByFiscalYear(ctx, year, "")
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*LineNode, len(lines))
	for _, l := range lines {
		nodes[l.ID()] = &LineNode{Line: l}
	}

	roots := make([]*LineNode, 0)
	for _, l := range lines {
		n := nodes[l.ID()]
		if parent, ok := nodes[l.ParentID()]; ok && l.ParentID() != "" {
			parent.Children = append(parent.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	return roots, nil
}

func sortByCode(lines []*entities.BudgetLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Code().String() < lines[j].Code().String()
	})
}
