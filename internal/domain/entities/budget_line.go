package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxLineNameLength = 200

type LineType string

const (
	LineTypeOperating   LineType = "operating"
	LineTypeInvestment  LineType = "investment"
	LineTypeDebtService LineType = "debt_service"
)

func ParseLineType(s string) (LineType, error) {
	switch t := LineType(strings.ToLower(strings.TrimSpace(s))); t {
	case LineTypeOperating, LineTypeInvestment, LineTypeDebtService:
		return t, nil
	default:
		return "", ErrInvalidLineType.Withf("invalid budget line type %q", s)
	}
}

type LineState string

const (
	LineStateActive  LineState = "active"
	LineStateClosed  LineState = "closed"
	LineStateBlocked LineState = "blocked"
)

// BudgetLine (rubro) is the appropriation aggregate.
//
// Balances:
//   - initial: assigned appropriation
//   - committed: reserved by CDPs and not yet executed
//   - executed: moved out of committed by CRPs
//
// committed + executed never exceeds initial.
type BudgetLine struct {
	eventRecorder

	id            string
	code          BudgetCode
	name          string
	description   string
	fiscalYear    FiscalYear
	lineType      LineType
	fundingSource FundingSource
	initial       Money
	committed     Money
	executed      Money
	state         LineState
	parentID      string
	childIDs      []string
	createdBy     string
	createdAt     time.Time
	updatedAt     time.Time
	version       int64
}

func NewBudgetLine(
	code BudgetCode,
	name, description string,
	year FiscalYear,
	lineType LineType,
	source FundingSource,
	parentID, createdBy string,
) (*BudgetLine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidLineName.Withf("budget line name cannot be empty")
	}
	if len([]rune(name)) > maxLineNameLength {
		return nil, ErrInvalidLineName.Withf("budget line name cannot exceed %d characters", maxLineNameLength)
	}
	if code.IsZero() {
		return nil, ErrInvalidBudgetCode
	}

	now := time.Now().UTC()
	l := &BudgetLine{
		id:            uuid.NewString(),
		code:          code,
		name:          name,
		description:   strings.TrimSpace(description),
		fiscalYear:    year,
		lineType:      lineType,
		fundingSource: source,
		state:         LineStateActive,
		parentID:      strings.TrimSpace(parentID),
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
	}
	l.record(LineCreated{
		EventMeta:  newEventMeta(l.id),
		Code:       code.String(),
		Name:       name,
		FiscalYear: year.Int(),
		CreatedBy:  createdBy,
	})
	return l, nil
}

func (l *BudgetLine) ID() string                   { return l.id }
func (l *BudgetLine) Code() BudgetCode             { return l.code }
func (l *BudgetLine) Name() string                 { return l.name }
func (l *BudgetLine) Description() string          { return l.description }
func (l *BudgetLine) FiscalYear() FiscalYear       { return l.fiscalYear }
func (l *BudgetLine) LineType() LineType           { return l.lineType }
func (l *BudgetLine) FundingSource() FundingSource { return l.fundingSource }
func (l *BudgetLine) Initial() Money               { return l.initial }
func (l *BudgetLine) Committed() Money             { return l.committed }
func (l *BudgetLine) Executed() Money              { return l.executed }
func (l *BudgetLine) State() LineState             { return l.state }
func (l *BudgetLine) ParentID() string             { return l.parentID }
func (l *BudgetLine) CreatedBy() string            { return l.createdBy }
func (l *BudgetLine) CreatedAt() time.Time         { return l.createdAt }
func (l *BudgetLine) UpdatedAt() time.Time         { return l.updatedAt }
func (l *BudgetLine) Version() int64               { return l.version }

func (l *BudgetLine) ChildIDs() []string {
	out := make([]string, len(l.childIDs))
	copy(out, l.childIDs)
	return out
}

// Available is initial - committed - executed.
func (l *BudgetLine) Available() Money {
	used := l.committed.Add(l.executed)
	avail, err := l.initial.Subtract(used)
	if err != nil {
		return ZeroMoney()
	}
	return avail
}

// ExecutionPercent is executed/initial*100 rounded to two places, 0 when nothing is assigned.
func (l *BudgetLine) ExecutionPercent() decimal.Decimal {
	if l.initial.IsZero() {
		return decimal.Zero
	}
	return l.executed.Decimal().
		Div(l.initial.Decimal()).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// AssignBudget replaces the initial appropriation.
func (l *BudgetLine) AssignBudget(amount Money, userID string) error {
	if l.state != LineStateActive {
		return ErrLineNotActive.Withf("cannot assign budget to a budget line in state %q", l.state)
	}
	used := l.committed.Add(l.executed)
	if amount.LessThan(used) {
		return ErrBudgetBelowUsage.Withf("assigned budget %s is below committed plus executed %s on budget line %q",
			amount.String(), used.String(), l.code.String())
	}

	l.initial = amount
	l.touch()
	l.record(BudgetAssigned{EventMeta: newEventMeta(l.id), Amount: amount.String(), UserID: userID})
	return nil
}

// CanReserve reports whether ReserveBalance(amount) would succeed, without
// changing the line.
func (l *BudgetLine) CanReserve(amount Money) error {
	if l.state != LineStateActive {
		return ErrLineNotActive.Withf("budget line %q is not active", l.code.String())
	}
	available := l.Available()
	if amount.GreaterThan(available) {
		return &InsufficientBalanceError{Code: l.code, Available: available, Requested: amount}
	}
	return nil
}

// ReserveBalance commits part of the available balance (CDP).
func (l *BudgetLine) ReserveBalance(amount Money, movementRef string) error {
	if err := l.CanReserve(amount); err != nil {
		return err
	}

	l.committed = l.committed.Add(amount)
	l.touch()
	l.record(BalanceReserved{EventMeta: newEventMeta(l.id), Amount: amount.String(), MovementRef: movementRef})
	return nil
}

// ReleaseBalance returns committed balance to available (CDP annulment or expiry).
// It is allowed on blocked lines so pending commitments can still be freed.
func (l *BudgetLine) ReleaseBalance(amount Money, reason string) error {
	committed, err := l.committed.Subtract(amount)
	if err != nil {
		return ErrReleaseExceedsCommit.Withf("cannot release %s, only %s is committed", amount.String(), l.committed.String())
	}

	l.committed = committed
	l.touch()
	l.record(BalanceReleased{EventMeta: newEventMeta(l.id), Amount: amount.String(), Reason: reason})
	return nil
}

// CanExecute reports whether ExecuteBalance(amount) would succeed, without
// changing the line.
func (l *BudgetLine) CanExecute(amount Money) error {
	if l.state != LineStateActive {
		return ErrLineNotActive.Withf("budget line %q is not active", l.code.String())
	}
	if amount.GreaterThan(l.committed) {
		return ErrExecuteExceedsCommit.Withf("amount to execute %s exceeds the committed balance %s", amount.String(), l.committed.String())
	}
	return nil
}

// ExecuteBalance moves amount from committed to executed (CRP).
func (l *BudgetLine) ExecuteBalance(amount Money, movementRef string) error {
	if err := l.CanExecute(amount); err != nil {
		return err
	}
	committed, err := l.committed.Subtract(amount)
	if err != nil {
		return ErrExecuteExceedsCommit.Withf("amount to execute %s exceeds the committed balance %s", amount.String(), l.committed.String())
	}

	l.committed = committed
	l.executed = l.executed.Add(amount)
	l.touch()
	l.record(BalanceExecuted{EventMeta: newEventMeta(l.id), Amount: amount.String(), MovementRef: movementRef})
	return nil
}

func (l *BudgetLine) Close(userID string) error {
	if l.state == LineStateClosed {
		return ErrLineAlreadyClosed
	}
	if l.committed.IsPositive() {
		return ErrLineHasCommitted.Withf("cannot close budget line with pending committed balance: %s", l.committed.String())
	}

	l.state = LineStateClosed
	l.touch()
	l.record(LineClosed{EventMeta: newEventMeta(l.id), UserID: userID})
	return nil
}

func (l *BudgetLine) Block(reason, userID string) error {
	if l.state == LineStateClosed || l.state == LineStateBlocked {
		return ErrLineNotBlockable.Withf("budget line cannot be blocked in state %q", l.state)
	}
	l.state = LineStateBlocked
	l.touch()
	l.record(LineBlocked{EventMeta: newEventMeta(l.id), Reason: strings.TrimSpace(reason), UserID: userID})
	return nil
}

// AddChild registers a child id on the parent's index. Parent pointers on the
// children stay authoritative; this index is informational.
func (l *BudgetLine) AddChild(childID string) {
	for _, id := range l.childIDs {
		if id == childID {
			return
		}
	}
	l.childIDs = append(l.childIDs, childID)
	l.touch()
}

// MarkCommitted advances the version after a successful write.
func (l *BudgetLine) MarkCommitted() {
	l.version++
}

func (l *BudgetLine) touch() {
	l.updatedAt = time.Now().UTC()
}

// BudgetLineSnapshot is the flat persisted form of a BudgetLine.
type BudgetLineSnapshot struct {
	ID            string
	Code          string
	Name          string
	Description   string
	FiscalYear    int
	LineType      LineType
	FundingSource FundingSource
	Initial       decimal.Decimal
	Committed     decimal.Decimal
	Executed      decimal.Decimal
	State         LineState
	ParentID      string
	ChildIDs      []string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

func (l *BudgetLine) Snapshot() BudgetLineSnapshot {
	return BudgetLineSnapshot{
		ID:            l.id,
		Code:          l.code.String(),
		Name:          l.name,
		Description:   l.description,
		FiscalYear:    l.fiscalYear.Int(),
		LineType:      l.lineType,
		FundingSource: l.fundingSource,
		Initial:       l.initial.Decimal(),
		Committed:     l.committed.Decimal(),
		Executed:      l.executed.Decimal(),
		State:         l.state,
		ParentID:      l.parentID,
		ChildIDs:      l.ChildIDs(),
		CreatedBy:     l.createdBy,
		CreatedAt:     l.createdAt,
		UpdatedAt:     l.updatedAt,
		Version:       l.version,
	}
}

// RehydrateBudgetLine rebuilds a line from storage without recording events.
func RehydrateBudgetLine(s BudgetLineSnapshot) (*BudgetLine, error) {
	code, err := NewBudgetCode(s.Code)
	if err != nil {
		return nil, err
	}
	year, err := NewFiscalYear(s.FiscalYear)
	if err != nil {
		return nil, err
	}
	initial, err := NewMoney(s.Initial)
	if err != nil {
		return nil, err
	}
	committed, err := NewMoney(s.Committed)
	if err != nil {
		return nil, err
	}
	executed, err := NewMoney(s.Executed)
	if err != nil {
		return nil, err
	}
	children := make([]string, len(s.ChildIDs))
	copy(children, s.ChildIDs)

	return &BudgetLine{
		id:            s.ID,
		code:          code,
		name:          s.Name,
		description:   s.Description,
		fiscalYear:    year,
		lineType:      s.LineType,
		fundingSource: s.FundingSource,
		initial:       initial,
		committed:     committed,
		executed:      executed,
		state:         s.State,
		parentID:      s.ParentID,
		childIDs:      children,
		createdBy:     s.CreatedBy,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
	}, nil
}
