package entities

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable fact recorded by an aggregate.
type DomainEvent interface {
	EventID() string
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// EventMeta carries the metadata shared by every event.
type EventMeta struct {
	ID        string    `json:"event_id"`
	Aggregate string    `json:"aggregate_id"`
	At        time.Time `json:"occurred_at"`
}

func newEventMeta(aggregateID string) EventMeta {
	return EventMeta{ID: uuid.NewString(), Aggregate: aggregateID, At: time.Now().UTC()}
}

func (m EventMeta) EventID() string       { return m.ID }
func (m EventMeta) AggregateID() string   { return m.Aggregate }
func (m EventMeta) OccurredAt() time.Time { return m.At }

// eventRecorder is embedded by aggregates. Events are consumed once:
// callers dispatch Events() and then ClearEvents().
type eventRecorder struct {
	events []DomainEvent
}

func (r *eventRecorder) record(e DomainEvent) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) Events() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *eventRecorder) ClearEvents() {
	r.events = nil
}

// Budget line events.

type LineCreated struct {
	EventMeta
	Code       string `json:"code"`
	Name       string `json:"name"`
	FiscalYear int    `json:"fiscal_year"`
	CreatedBy  string `json:"created_by"`
}

func (LineCreated) EventName() string { return "budget_line.created" }

type BudgetAssigned struct {
	EventMeta
	Amount string `json:"amount"`
	UserID string `json:"user_id"`
}

func (BudgetAssigned) EventName() string { return "budget_line.budget_assigned" }

type BalanceReserved struct {
	EventMeta
	Amount      string `json:"amount"`
	MovementRef string `json:"movement_ref"`
}

func (BalanceReserved) EventName() string { return "budget_line.balance_reserved" }

type BalanceReleased struct {
	EventMeta
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

func (BalanceReleased) EventName() string { return "budget_line.balance_released" }

type BalanceExecuted struct {
	EventMeta
	Amount      string `json:"amount"`
	MovementRef string `json:"movement_ref"`
}

func (BalanceExecuted) EventName() string { return "budget_line.balance_executed" }

type LineClosed struct {
	EventMeta
	UserID string `json:"user_id"`
}

func (LineClosed) EventName() string { return "budget_line.closed" }

type LineBlocked struct {
	EventMeta
	Reason string `json:"reason"`
	UserID string `json:"user_id"`
}

func (LineBlocked) EventName() string { return "budget_line.blocked" }

// Movement events.

type MovementRegistered struct {
	EventMeta
	LineID    string `json:"line_id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Numbering string `json:"numbering"`
	UserID    string `json:"user_id"`
}

func (MovementRegistered) EventName() string { return "movement.registered" }

type MovementAnnulled struct {
	EventMeta
	LineID string `json:"line_id"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
	UserID string `json:"user_id"`
}

func (MovementAnnulled) EventName() string { return "movement.annulled" }

type MovementExpired struct {
	EventMeta
	LineID string `json:"line_id"`
	Amount string `json:"amount"`
}

func (MovementExpired) EventName() string { return "movement.expired" }

// Approval flow events.

type FlowInitiated struct {
	EventMeta
	FlowType    string `json:"flow_type"`
	InitiatorID string `json:"initiator_id"`
	LineID      string `json:"line_id,omitempty"`
	MovementID  string `json:"movement_id,omitempty"`
}

func (FlowInitiated) EventName() string { return "approval_flow.initiated" }

type StepApproved struct {
	EventMeta
	ApprovedStep int    `json:"approved_step"`
	ApproverID   string `json:"approver_id"`
	CurrentStep  int    `json:"current_step"`
}

func (StepApproved) EventName() string { return "approval_flow.step_approved" }

type FlowApproved struct {
	EventMeta
	FlowType        string `json:"flow_type"`
	FinalApproverID string `json:"final_approver_id"`
	LineID          string `json:"line_id,omitempty"`
	MovementID      string `json:"movement_id,omitempty"`
}

func (FlowApproved) EventName() string { return "approval_flow.approved" }

type FlowRejected struct {
	EventMeta
	FlowType   string `json:"flow_type"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
	LineID     string `json:"line_id,omitempty"`
	MovementID string `json:"movement_id,omitempty"`
}

func (FlowRejected) EventName() string { return "approval_flow.rejected" }

type FlowReturned struct {
	EventMeta
	FlowType    string `json:"flow_type"`
	ApproverID  string `json:"approver_id"`
	Reason      string `json:"reason"`
	CurrentStep int    `json:"current_step"`
}

func (FlowReturned) EventName() string { return "approval_flow.returned" }

type FlowActionApplied struct {
	EventMeta
	FlowType   string `json:"flow_type"`
	LineID     string `json:"line_id,omitempty"`
	MovementID string `json:"movement_id,omitempty"`
}

func (FlowActionApplied) EventName() string { return "approval_flow.action_applied" }
