package request

import (
	"encoding/json"
	"rubrox/internal/usecase"
)

type InitiateFlowRequest struct {
	FlowType   string          `json:"flow_type" binding:"required"`
	Payload    json.RawMessage `json:"payload" binding:"required"`
	LineID     string          `json:"line_id"`
	MovementID string          `json:"movement_id"`
}

func (r InitiateFlowRequest) ToCommand(initiatorID string) usecase.InitiateFlowCommand {
	return usecase.InitiateFlowCommand{
		FlowType:    r.FlowType,
		InitiatorID: initiatorID,
		Payload:     r.Payload,
		LineID:      r.LineID,
		MovementID:  r.MovementID,
	}
}

// FlowDecisionRequest carries the approval comment, or the reason of a
// rejection or return.
type FlowDecisionRequest struct {
	Comment string `json:"comment"`
	Reason  string `json:"reason"`
}

func (r FlowDecisionRequest) Text() string {
	if r.Reason != "" {
		return r.Reason
	}
	return r.Comment
}
