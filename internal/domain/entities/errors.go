package entities

import "fmt"

// ErrorKind classifies a domain failure so outer layers can map it to a
// response category without knowing every individual code.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindState      ErrorKind = "state"
	KindForbidden  ErrorKind = "forbidden"
	KindNotFound   ErrorKind = "not_found"
)

// DomainError is an expected domain outcome, never a fault.
//
// errors.Is matches a DomainError against:
//   - a coded sentinel (same Code), e.g. ErrInsufficientBalance
//   - a kind sentinel (empty Code, same Kind), e.g. ErrStatePrecondition
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return string(e.Kind)
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	return e.Kind == t.Kind
}

// Withf returns a copy of the sentinel carrying a contextual message.
func (e *DomainError) Withf(format string, args ...any) *DomainError {
	return &DomainError{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

func newError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Kind sentinels.
var (
	ErrValidation        = &DomainError{Kind: KindValidation}
	ErrStatePrecondition = &DomainError{Kind: KindState}
	ErrForbidden         = &DomainError{Kind: KindForbidden}
	ErrNotFound          = &DomainError{Kind: KindNotFound}
)

// Value type validation.
var (
	ErrNegativeMoney        = newError(KindValidation, "NEGATIVE_MONEY", "money cannot be negative")
	ErrInvalidMoney         = newError(KindValidation, "INVALID_MONEY", "invalid monetary amount")
	ErrInvalidBudgetCode    = newError(KindValidation, "INVALID_BUDGET_CODE", "invalid budget code")
	ErrInvalidFiscalYear    = newError(KindValidation, "INVALID_FISCAL_YEAR", "invalid fiscal year")
	ErrInvalidFundingSource = newError(KindValidation, "INVALID_FUNDING_SOURCE", "invalid funding source")
	ErrInvalidLineType      = newError(KindValidation, "INVALID_LINE_TYPE", "invalid budget line type")
	ErrInvalidMovementType  = newError(KindValidation, "INVALID_MOVEMENT_TYPE", "invalid movement type")
	ErrInvalidFlowType      = newError(KindValidation, "INVALID_FLOW_TYPE", "invalid approval flow type")
	ErrInvalidLineName      = newError(KindValidation, "INVALID_LINE_NAME", "invalid budget line name")
	ErrReasonRequired       = newError(KindValidation, "REASON_REQUIRED", "reason is required")
	ErrInvalidMovement      = newError(KindValidation, "INVALID_MOVEMENT", "invalid movement")
	ErrInvalidFlow          = newError(KindValidation, "INVALID_FLOW", "invalid approval flow")
	ErrInvalidSequence      = newError(KindValidation, "INVALID_SEQUENCE", "numbering sequence must start at 1")
)

// Budget line preconditions.
var (
	ErrLineNotActive        = newError(KindState, "LINE_NOT_ACTIVE", "budget line is not active")
	ErrInsufficientBalance  = newError(KindState, "INSUFFICIENT_BALANCE", "insufficient balance")
	ErrReleaseExceedsCommit = newError(KindState, "RELEASE_EXCEEDS_COMMITTED", "cannot release more than the committed balance")
	ErrExecuteExceedsCommit = newError(KindState, "EXECUTE_EXCEEDS_COMMITTED", "amount to execute exceeds the committed balance")
	ErrLineAlreadyClosed    = newError(KindState, "LINE_ALREADY_CLOSED", "budget line is already closed")
	ErrLineHasCommitted     = newError(KindState, "LINE_HAS_COMMITTED", "budget line has committed balance")
	ErrLineNotBlockable     = newError(KindState, "LINE_NOT_BLOCKABLE", "budget line cannot be blocked")
	ErrBudgetBelowUsage     = newError(KindState, "BUDGET_BELOW_USAGE", "assigned budget is below committed plus executed")
)

// Movement preconditions.
var (
	ErrMovementNotActive = newError(KindState, "MOVEMENT_NOT_ACTIVE", "movement is not active")
)

// Approval flow preconditions.
var (
	ErrFlowNotActionable     = newError(KindState, "FLOW_NOT_APPROVABLE", "approval flow is not approvable")
	ErrNoPendingStep         = newError(KindState, "NO_PENDING_STEP", "approval flow has no pending step")
	ErrCannotReturnFirstStep = newError(KindState, "CANNOT_RETURN_FIRST_STEP", "cannot return first step")
	ErrRoleMismatch          = newError(KindForbidden, "ROLE_MISMATCH", "role mismatch")
	ErrFlowNotApproved       = newError(KindState, "FLOW_NOT_APPROVED", "approval flow is not approved")
	ErrFlowActionApplied     = newError(KindState, "FLOW_ACTION_ALREADY_APPLIED", "approval flow action was already applied")
)

// InsufficientBalanceError is returned by ReserveBalance when the requested
// amount exceeds the available balance.
type InsufficientBalanceError struct {
	Code      BudgetCode
	Available Money
	Requested Money
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on budget line %q: available %s, requested %s",
		e.Code.String(), e.Available.String(), e.Requested.String())
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return ErrInsufficientBalance.Is(target)
}
