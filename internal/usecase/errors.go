package usecase

import "rubrox/internal/domain/entities"

var (
	ErrInvalidID             = &entities.DomainError{Kind: entities.KindValidation, Code: "INVALID_ID", Message: "invalid id"}
	ErrInvalidPayload        = &entities.DomainError{Kind: entities.KindValidation, Code: "INVALID_PAYLOAD", Message: "approval flow payload must be valid JSON"}
	ErrParentYearMismatch    = &entities.DomainError{Kind: entities.KindValidation, Code: "PARENT_YEAR_MISMATCH", Message: "parent budget line belongs to another fiscal year"}
	ErrNotACDP               = &entities.DomainError{Kind: entities.KindValidation, Code: "NOT_A_CDP", Message: "movement is not a CDP"}
	ErrNoStepRoles           = &entities.DomainError{Kind: entities.KindValidation, Code: "NO_STEP_ROLES", Message: "no approval roles configured for flow type"}
	ErrBudgetLineNotFound    = &entities.DomainError{Kind: entities.KindNotFound, Code: "BUDGET_LINE_NOT_FOUND", Message: "budget line not found"}
	ErrParentLineNotFound    = &entities.DomainError{Kind: entities.KindNotFound, Code: "PARENT_LINE_NOT_FOUND", Message: "parent budget line not found"}
	ErrMovementNotFound      = &entities.DomainError{Kind: entities.KindNotFound, Code: "MOVEMENT_NOT_FOUND", Message: "movement not found"}
	ErrApprovalFlowNotFound  = &entities.DomainError{Kind: entities.KindNotFound, Code: "APPROVAL_FLOW_NOT_FOUND", Message: "approval flow not found"}
	ErrBudgetLineExists      = &entities.DomainError{Kind: entities.KindState, Code: "BUDGET_LINE_ALREADY_EXISTS", Message: "budget line already exists"}
	ErrMovementNotAnnullable = &entities.DomainError{Kind: entities.KindState, Code: "MOVEMENT_NOT_ANNULLABLE", Message: "only CDP movements can be annulled"}
	ErrCRPExceedsCDP         = &entities.DomainError{Kind: entities.KindState, Code: "CRP_EXCEEDS_CDP", Message: "CRP amount exceeds the unregistered CDP balance"}
	ErrFlowActionFailed      = &entities.DomainError{Kind: entities.KindState, Code: "FLOW_ACTION_FAILED", Message: "approved flow action could not be applied"}
	ErrUnsupportedFlowAction = &entities.DomainError{Kind: entities.KindState, Code: "UNSUPPORTED_FLOW_ACTION", Message: "flow type has no ledger action"}
	ErrNoFlowExecutor        = &entities.DomainError{Kind: entities.KindState, Code: "NO_FLOW_EXECUTOR", Message: "no flow action executor configured"}
)
