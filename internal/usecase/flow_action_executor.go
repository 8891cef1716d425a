package usecase

import (
	"context"
	"encoding/json"
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
)

// Flow payloads, one per gated ledger action. Ids missing from a payload
// fall back to the line/movement the flow references.
type (
	LineCreationPayload struct {
		Code          string `json:"code"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		FiscalYear    int    `json:"fiscal_year"`
		LineType      string `json:"line_type"`
		FundingSource string `json:"funding_source"`
		ParentID      string `json:"parent_id"`
	}

	BudgetAssignmentPayload struct {
		LineID string          `json:"line_id"`
		Amount decimal.Decimal `json:"amount"`
	}

	CDPRegistrationPayload struct {
		LineID  string          `json:"line_id"`
		Amount  decimal.Decimal `json:"amount"`
		Concept string          `json:"concept"`
		DueDate *time.Time      `json:"due_date"`
	}

	CRPRegistrationPayload struct {
		CDPID   string          `json:"cdp_id"`
		Amount  decimal.Decimal `json:"amount"`
		Concept string          `json:"concept"`
	}

	MovementAnnulmentPayload struct {
		MovementID string `json:"movement_id"`
		Reason     string `json:"reason"`
	}

	LineClosurePayload struct {
		LineID string `json:"line_id"`
	}
)

// FlowActionExecutor applies an approved flow's payload through the ledger
// use cases, acting on behalf of the flow initiator.
type FlowActionExecutor struct {
	lines     IBudgetLineUseCase
	movements IMovementUseCase
}

var _ interfaces.IFlowActionExecutor = (*FlowActionExecutor)(nil)

func NewFlowActionExecutor(lines IBudgetLineUseCase, movements IMovementUseCase) *FlowActionExecutor {
	return &FlowActionExecutor{lines: lines, movements: movements}
}

func (e *FlowActionExecutor) Execute(ctx context.Context, flow *entities.ApprovalFlow) error {
	actor := flow.InitiatorID()
	payload := []byte(flow.Payload())

	switch flow.Type() {
	case entities.FlowTypeLineCreation:
		var p LineCreationPayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.lines.Create(ctx, CreateBudgetLineCommand{
			Code:          p.Code,
			Name:          p.Name,
			Description:   p.Description,
			FiscalYear:    p.FiscalYear,
			LineType:      p.LineType,
			FundingSource: p.FundingSource,
			ParentID:      p.ParentID,
			UserID:        actor,
		})
		return err

	case entities.FlowTypeBudgetAssignment:
		var p BudgetAssignmentPayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.lines.AssignBudget(ctx, fallback(p.LineID, flow.LineID()), p.Amount, actor)
		return err

	case entities.FlowTypeCDPRegistration:
		var p CDPRegistrationPayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.movements.RegisterCDP(ctx, RegisterCDPCommand{
			LineID:  fallback(p.LineID, flow.LineID()),
			Amount:  p.Amount,
			Concept: p.Concept,
			UserID:  actor,
			DueDate: p.DueDate,
		})
		return err

	case entities.FlowTypeCRPRegistration:
		var p CRPRegistrationPayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.movements.RegisterCRP(ctx, RegisterCRPCommand{
			CDPID:   fallback(p.CDPID, flow.MovementID()),
			Amount:  p.Amount,
			Concept: p.Concept,
			UserID:  actor,
		})
		return err

	case entities.FlowTypeMovementAnnulment:
		var p MovementAnnulmentPayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.movements.Annul(ctx, fallback(p.MovementID, flow.MovementID()), p.Reason, actor)
		return err

	case entities.FlowTypeLineClosure:
		var p LineClosurePayload
		if err := decodePayload(payload, &p); err != nil {
			return err
		}
		_, err := e.lines.Close(ctx, fallback(p.LineID, flow.LineID()), actor)
		return err

	default:
		return ErrUnsupportedFlowAction.Withf("flow type %q has no ledger action", flow.Type())
	}
}

func decodePayload(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrInvalidPayload.Withf("invalid approval flow payload: %v", err)
	}
	return nil
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
