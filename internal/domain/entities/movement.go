package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementTypeAppropriation MovementType = "appropriation"
	MovementTypeReduction     MovementType = "reduction"
	MovementTypeCDP           MovementType = "cdp"
	MovementTypeCRP           MovementType = "crp"
	MovementTypePayment       MovementType = "payment"
	MovementTypeRefund        MovementType = "refund"
	MovementTypeTransfer      MovementType = "transfer"
)

func ParseMovementType(s string) (MovementType, error) {
	switch t := MovementType(strings.ToLower(strings.TrimSpace(s))); t {
	case MovementTypeAppropriation, MovementTypeReduction, MovementTypeCDP, MovementTypeCRP,
		MovementTypePayment, MovementTypeRefund, MovementTypeTransfer:
		return t, nil
	default:
		return "", ErrInvalidMovementType.Withf("invalid movement type %q", s)
	}
}

type MovementState string

const (
	MovementStateActive   MovementState = "active"
	MovementStateAnnulled MovementState = "annulled"
	MovementStateExpired  MovementState = "expired"
)

// Movement records a single financial operation against a budget line.
// A CRP points at the CDP it was issued from through parentID.
type Movement struct {
	eventRecorder

	id           string
	lineID       string
	movementType MovementType
	amount       Money
	concept      string
	numbering    string
	userID       string
	parentID     string
	registeredAt time.Time
	dueDate      *time.Time
	state        MovementState
	observation  string
	updatedAt    time.Time
	version      int64
}

func NewMovement(
	lineID string,
	movementType MovementType,
	amount Money,
	concept, numbering, userID, parentID string,
	dueDate *time.Time,
) (*Movement, error) {
	concept = strings.TrimSpace(concept)
	numbering = strings.TrimSpace(numbering)
	switch {
	case strings.TrimSpace(lineID) == "":
		return nil, ErrInvalidMovement.Withf("movement budget line is required")
	case concept == "":
		return nil, ErrInvalidMovement.Withf("movement concept is required")
	case numbering == "":
		return nil, ErrInvalidMovement.Withf("movement numbering is required")
	case !amount.IsPositive():
		return nil, ErrInvalidMovement.Withf("movement amount must be greater than zero")
	}

	var due *time.Time
	if dueDate != nil {
		d := dueDate.UTC()
		due = &d
	}

	now := time.Now().UTC()
	m := &Movement{
		id:           uuid.NewString(),
		lineID:       lineID,
		movementType: movementType,
		amount:       amount,
		concept:      concept,
		numbering:    numbering,
		userID:       userID,
		parentID:     strings.TrimSpace(parentID),
		registeredAt: now,
		dueDate:      due,
		state:        MovementStateActive,
		updatedAt:    now,
	}
	m.record(MovementRegistered{
		EventMeta: newEventMeta(m.id),
		LineID:    lineID,
		Type:      string(movementType),
		Amount:    amount.String(),
		Numbering: numbering,
		UserID:    userID,
	})
	return m, nil
}

func (m *Movement) ID() string              { return m.id }
func (m *Movement) LineID() string          { return m.lineID }
func (m *Movement) Type() MovementType      { return m.movementType }
func (m *Movement) Amount() Money           { return m.amount }
func (m *Movement) Concept() string         { return m.concept }
func (m *Movement) Numbering() string       { return m.numbering }
func (m *Movement) UserID() string          { return m.userID }
func (m *Movement) ParentID() string        { return m.parentID }
func (m *Movement) RegisteredAt() time.Time { return m.registeredAt }
func (m *Movement) State() MovementState    { return m.state }
func (m *Movement) Observation() string     { return m.observation }
func (m *Movement) UpdatedAt() time.Time    { return m.updatedAt }
func (m *Movement) Version() int64          { return m.version }

func (m *Movement) DueDate() *time.Time {
	if m.dueDate == nil {
		return nil
	}
	d := *m.dueDate
	return &d
}

func (m *Movement) IsActive() bool {
	return m.state == MovementStateActive
}

// IsDue reports whether an active movement has a due date at or before now.
func (m *Movement) IsDue(now time.Time) bool {
	return m.IsActive() && m.dueDate != nil && !m.dueDate.After(now)
}

func (m *Movement) Annul(reason, userID string) error {
	if m.state != MovementStateActive {
		return ErrMovementNotActive.Withf("movement %q is already %s and cannot be annulled", m.numbering, m.state)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired.Withf("annulment reason is required")
	}

	m.state = MovementStateAnnulled
	m.observation = reason
	m.updatedAt = time.Now().UTC()
	m.record(MovementAnnulled{
		EventMeta: newEventMeta(m.id),
		LineID:    m.lineID,
		Amount:    m.amount.String(),
		Reason:    reason,
		UserID:    userID,
	})
	return nil
}

func (m *Movement) MarkExpired() error {
	if m.state != MovementStateActive {
		return ErrMovementNotActive.Withf("only active movements can expire, movement %q is %s", m.numbering, m.state)
	}

	m.state = MovementStateExpired
	m.updatedAt = time.Now().UTC()
	m.record(MovementExpired{EventMeta: newEventMeta(m.id), LineID: m.lineID, Amount: m.amount.String()})
	return nil
}

// MarkCommitted advances the version after a successful write.
func (m *Movement) MarkCommitted() {
	m.version++
}

type MovementSnapshot struct {
	ID           string
	LineID       string
	Type         MovementType
	Amount       decimal.Decimal
	Concept      string
	Numbering    string
	UserID       string
	ParentID     string
	RegisteredAt time.Time
	DueDate      *time.Time
	State        MovementState
	Observation  string
	UpdatedAt    time.Time
	Version      int64
}

func (m *Movement) Snapshot() MovementSnapshot {
	return MovementSnapshot{
		ID:           m.id,
		LineID:       m.lineID,
		Type:         m.movementType,
		Amount:       m.amount.Decimal(),
		Concept:      m.concept,
		Numbering:    m.numbering,
		UserID:       m.userID,
		ParentID:     m.parentID,
		RegisteredAt: m.registeredAt,
		DueDate:      m.DueDate(),
		State:        m.state,
		Observation:  m.observation,
		UpdatedAt:    m.updatedAt,
		Version:      m.version,
	}
}

func RehydrateMovement(s MovementSnapshot) (*Movement, error) {
	amount, err := NewMoney(s.Amount)
	if err != nil {
		return nil, err
	}
	var due *time.Time
	if s.DueDate != nil {
		d := *s.DueDate
		due = &d
	}
	return &Movement{
		id:           s.ID,
		lineID:       s.LineID,
		movementType: s.Type,
		amount:       amount,
		concept:      s.Concept,
		numbering:    s.Numbering,
		userID:       s.UserID,
		parentID:     s.ParentID,
		registeredAt: s.RegisteredAt,
		dueDate:      due,
		state:        s.State,
		observation:  s.Observation,
		updatedAt:    s.UpdatedAt,
		version:      s.Version,
	}, nil
}
