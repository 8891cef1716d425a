package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FlowType string

const (
	FlowTypeLineCreation      FlowType = "line_creation"
	FlowTypeBudgetAssignment  FlowType = "budget_assignment"
	FlowTypeCDPRegistration   FlowType = "cdp_registration"
	FlowTypeCRPRegistration   FlowType = "crp_registration"
	FlowTypeMovementAnnulment FlowType = "movement_annulment"
	FlowTypeLineClosure       FlowType = "line_closure"
	FlowTypeTransfer          FlowType = "transfer"
)

// FlowTypes lists every flow type in declaration order.
var FlowTypes = []FlowType{
	FlowTypeLineCreation,
	FlowTypeBudgetAssignment,
	FlowTypeCDPRegistration,
	FlowTypeCRPRegistration,
	FlowTypeMovementAnnulment,
	FlowTypeLineClosure,
	FlowTypeTransfer,
}

func ParseFlowType(s string) (FlowType, error) {
	t := FlowType(strings.ToLower(strings.TrimSpace(s)))
	for _, ft := range FlowTypes {
		if ft == t {
			return t, nil
		}
	}
	return "", ErrInvalidFlowType.Withf("invalid approval flow type %q", s)
}

type FlowState string

const (
	FlowStatePending   FlowState = "pending"
	FlowStateInReview  FlowState = "in_review"
	FlowStateApproved  FlowState = "approved"
	FlowStateRejected  FlowState = "rejected"
	FlowStateReturned  FlowState = "returned"
	FlowStateCancelled FlowState = "cancelled"
)

// IsActionable reports whether approvers can still act on a flow in this state.
func (s FlowState) IsActionable() bool {
	return s == FlowStatePending || s == FlowStateInReview || s == FlowStateReturned
}

func (s FlowState) IsTerminal() bool {
	return s == FlowStateApproved || s == FlowStateRejected || s == FlowStateCancelled
}

type StepState string

const (
	StepStatePending  StepState = "pending"
	StepStateApproved StepState = "approved"
	StepStateRejected StepState = "rejected"
	StepStateReturned StepState = "returned"
)

// StepAction is a past decision on a step that was later re-opened.
type StepAction struct {
	State      StepState
	ApproverID string
	Comment    string
	At         time.Time
}

// ApprovalStep is one role-gated step of a flow. Orders are 1-based and contiguous.
type ApprovalStep struct {
	ID           string
	Order        int
	RequiredRole string
	State        StepState
	ApproverID   string
	Comment      string
	ActedAt      *time.Time
	History      []StepAction
}

func (s *ApprovalStep) act(state StepState, approverID, comment string) {
	now := time.Now().UTC()
	s.State = state
	s.ApproverID = approverID
	s.Comment = comment
	s.ActedAt = &now
}

// reopen moves the current decision into the history and resets the step to pending.
func (s *ApprovalStep) reopen() {
	if s.State == StepStatePending {
		return
	}
	action := StepAction{State: s.State, ApproverID: s.ApproverID, Comment: s.Comment}
	if s.ActedAt != nil {
		action.At = *s.ActedAt
	}
	s.History = append(s.History, action)
	s.State = StepStatePending
	s.ApproverID = ""
	s.Comment = ""
	s.ActedAt = nil
}

func (s ApprovalStep) clone() ApprovalStep {
	out := s
	if s.ActedAt != nil {
		t := *s.ActedAt
		out.ActedAt = &t
	}
	out.History = append([]StepAction(nil), s.History...)
	return out
}

// ApprovalFlow is the multi-step approval state machine gating a ledger action.
//
//	Pending -> InReview -> Approved
//	Pending|InReview|Returned -> Rejected
//	InReview|Returned -> Returned (current step > 1)
type ApprovalFlow struct {
	eventRecorder

	id            string
	flowType      FlowType
	state         FlowState
	initiatorID   string
	payload       string
	lineID        string
	movementID    string
	steps         []ApprovalStep
	currentStep   int
	startedAt     time.Time
	endedAt       *time.Time
	actionApplied bool
	version       int64
}

func NewApprovalFlow(
	flowType FlowType,
	initiatorID, payload string,
	stepRoles []string,
	lineID, movementID string,
) (*ApprovalFlow, error) {
	if len(stepRoles) == 0 {
		return nil, ErrInvalidFlow.Withf("an approval flow must have at least one step")
	}
	if strings.TrimSpace(payload) == "" {
		return nil, ErrInvalidFlow.Withf("approval flow payload cannot be empty")
	}

	steps := make([]ApprovalStep, 0, len(stepRoles))
	for i, role := range stepRoles {
		role = strings.TrimSpace(role)
		if role == "" {
			return nil, ErrInvalidFlow.Withf("step %d has no required role", i+1)
		}
		steps = append(steps, ApprovalStep{
			ID:           uuid.NewString(),
			Order:        i + 1,
			RequiredRole: role,
			State:        StepStatePending,
		})
	}

	f := &ApprovalFlow{
		id:          uuid.NewString(),
		flowType:    flowType,
		state:       FlowStatePending,
		initiatorID: initiatorID,
		payload:     payload,
		lineID:      strings.TrimSpace(lineID),
		movementID:  strings.TrimSpace(movementID),
		steps:       steps,
		currentStep: 1,
		startedAt:   time.Now().UTC(),
	}
	f.record(FlowInitiated{
		EventMeta:   newEventMeta(f.id),
		FlowType:    string(flowType),
		InitiatorID: initiatorID,
		LineID:      f.lineID,
		MovementID:  f.movementID,
	})
	return f, nil
}

func (f *ApprovalFlow) ID() string           { return f.id }
func (f *ApprovalFlow) Type() FlowType       { return f.flowType }
func (f *ApprovalFlow) State() FlowState     { return f.state }
func (f *ApprovalFlow) InitiatorID() string  { return f.initiatorID }
func (f *ApprovalFlow) Payload() string      { return f.payload }
func (f *ApprovalFlow) LineID() string       { return f.lineID }
func (f *ApprovalFlow) MovementID() string   { return f.movementID }
func (f *ApprovalFlow) CurrentStep() int     { return f.currentStep }
func (f *ApprovalFlow) StartedAt() time.Time { return f.startedAt }
func (f *ApprovalFlow) Version() int64       { return f.version }

// ActionApplied reports whether the gated ledger action of an approved flow has run.
func (f *ApprovalFlow) ActionApplied() bool { return f.actionApplied }

func (f *ApprovalFlow) EndedAt() *time.Time {
	if f.endedAt == nil {
		return nil
	}
	t := *f.endedAt
	return &t
}

func (f *ApprovalFlow) Steps() []ApprovalStep {
	out := make([]ApprovalStep, len(f.steps))
	for i, s := range f.steps {
		out[i] = s.clone()
	}
	return out
}

// PendingStep returns the step the flow is waiting on, if any.
func (f *ApprovalFlow) PendingStep() (ApprovalStep, bool) {
	s := f.pendingStep()
	if s == nil {
		return ApprovalStep{}, false
	}
	return s.clone(), true
}

func (f *ApprovalFlow) pendingStep() *ApprovalStep {
	s := f.stepAt(f.currentStep)
	if s == nil || s.State != StepStatePending {
		return nil
	}
	return s
}

func (f *ApprovalFlow) stepAt(order int) *ApprovalStep {
	if order < 1 || order > len(f.steps) {
		return nil
	}
	return &f.steps[order-1]
}

// AwaitsRole reports whether the flow is actionable and its pending step requires role.
func (f *ApprovalFlow) AwaitsRole(role string) bool {
	if !f.state.IsActionable() {
		return false
	}
	s := f.pendingStep()
	return s != nil && s.RequiredRole == role
}

// Approve approves the current step. Approving the last step approves the flow.
func (f *ApprovalFlow) Approve(approverID, role, comment string) error {
	if !f.state.IsActionable() {
		return ErrFlowNotActionable.Withf("approval flow is not approvable, current state: %s", f.state)
	}
	step, err := f.gate(role)
	if err != nil {
		return err
	}

	step.act(StepStateApproved, approverID, strings.TrimSpace(comment))

	next := f.stepAt(f.currentStep + 1)
	if next == nil {
		now := time.Now().UTC()
		f.state = FlowStateApproved
		f.endedAt = &now
		f.record(FlowApproved{
			EventMeta:       newEventMeta(f.id),
			FlowType:        string(f.flowType),
			FinalApproverID: approverID,
			LineID:          f.lineID,
			MovementID:      f.movementID,
		})
		return nil
	}

	// a step returned earlier waits for a fresh decision
	next.reopen()
	f.currentStep++
	f.state = FlowStateInReview
	f.record(StepApproved{
		EventMeta:    newEventMeta(f.id),
		ApprovedStep: step.Order,
		ApproverID:   approverID,
		CurrentStep:  f.currentStep,
	})
	return nil
}

// Reject closes the flow as rejected.
func (f *ApprovalFlow) Reject(approverID, role, reason string) error {
	if !f.state.IsActionable() {
		return ErrFlowNotActionable.Withf("approval flow is not rejectable, current state: %s", f.state)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired.Withf("rejection reason is required")
	}
	step, err := f.gate(role)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	step.act(StepStateRejected, approverID, reason)
	f.state = FlowStateRejected
	f.endedAt = &now
	f.record(FlowRejected{
		EventMeta:  newEventMeta(f.id),
		FlowType:   string(f.flowType),
		ApproverID: approverID,
		Reason:     reason,
		LineID:     f.lineID,
		MovementID: f.movementID,
	})
	return nil
}

// Return sends the flow back one step. The previous step is re-opened as pending
// and its earlier decision is kept in the step history.
func (f *ApprovalFlow) Return(approverID, role, reason string) error {
	if !f.state.IsActionable() {
		return ErrFlowNotActionable.Withf("approval flow cannot be returned in state %s", f.state)
	}
	if f.currentStep <= 1 {
		return ErrCannotReturnFirstStep
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired.Withf("return reason is required")
	}
	step, err := f.gate(role)
	if err != nil {
		return err
	}

	step.act(StepStateReturned, approverID, reason)
	f.currentStep--
	f.stepAt(f.currentStep).reopen()
	f.state = FlowStateReturned
	f.record(FlowReturned{
		EventMeta:   newEventMeta(f.id),
		FlowType:    string(f.flowType),
		ApproverID:  approverID,
		Reason:      reason,
		CurrentStep: f.currentStep,
	})
	return nil
}

func (f *ApprovalFlow) gate(role string) (*ApprovalStep, error) {
	step := f.pendingStep()
	if step == nil {
		return nil, ErrNoPendingStep
	}
	if step.RequiredRole != role {
		return nil, ErrRoleMismatch.Withf("role %q cannot act on step %d, required role: %q", role, step.Order, step.RequiredRole)
	}
	return step, nil
}

// MarkActionApplied records that the gated action of an approved flow ran.
// It can happen once per flow.
func (f *ApprovalFlow) MarkActionApplied() error {
	if f.state != FlowStateApproved {
		return ErrFlowNotApproved.Withf("approval flow action cannot be applied in state %s", f.state)
	}
	if f.actionApplied {
		return ErrFlowActionApplied.Withf("approval flow %q action was already applied", f.id)
	}

	f.actionApplied = true
	f.record(FlowActionApplied{
		EventMeta:  newEventMeta(f.id),
		FlowType:   string(f.flowType),
		LineID:     f.lineID,
		MovementID: f.movementID,
	})
	return nil
}

// MarkCommitted advances the version after a successful write.
func (f *ApprovalFlow) MarkCommitted() {
	f.version++
}

type ApprovalFlowSnapshot struct {
	ID            string
	Type          FlowType
	State         FlowState
	InitiatorID   string
	Payload       string
	LineID        string
	MovementID    string
	Steps         []ApprovalStep
	CurrentStep   int
	StartedAt     time.Time
	EndedAt       *time.Time
	ActionApplied bool
	Version       int64
}

func (f *ApprovalFlow) Snapshot() ApprovalFlowSnapshot {
	return ApprovalFlowSnapshot{
		ID:            f.id,
		Type:          f.flowType,
		State:         f.state,
		InitiatorID:   f.initiatorID,
		Payload:       f.payload,
		LineID:        f.lineID,
		MovementID:    f.movementID,
		Steps:         f.Steps(),
		CurrentStep:   f.currentStep,
		StartedAt:     f.startedAt,
		EndedAt:       f.EndedAt(),
		ActionApplied: f.actionApplied,
		Version:       f.version,
	}
}

func RehydrateApprovalFlow(s ApprovalFlowSnapshot) (*ApprovalFlow, error) {
	if len(s.Steps) == 0 {
		return nil, ErrInvalidFlow.Withf("approval flow %q has no steps", s.ID)
	}
	steps := make([]ApprovalStep, len(s.Steps))
	for i, st := range s.Steps {
		if st.Order != i+1 {
			return nil, ErrInvalidFlow.Withf("approval flow %q has non contiguous step orders", s.ID)
		}
		steps[i] = st.clone()
	}
	var ended *time.Time
	if s.EndedAt != nil {
		t := *s.EndedAt
		ended = &t
	}
	return &ApprovalFlow{
		id:            s.ID,
		flowType:      s.Type,
		state:         s.State,
		initiatorID:   s.InitiatorID,
		payload:       s.Payload,
		lineID:        s.LineID,
		movementID:    s.MovementID,
		steps:         steps,
		currentStep:   s.CurrentStep,
		startedAt:     s.StartedAt,
		endedAt:       ended,
		actionApplied: s.ActionApplied,
		version:       s.Version,
	}, nil
}
