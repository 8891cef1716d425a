package response

import (
	"encoding/json"
	"rubrox/internal/domain/entities"
	"time"
)

type StepActionResponse struct {
	State      string    `json:"state"`
	ApproverID string    `json:"approver_id"`
	Comment    string    `json:"comment,omitempty"`
	At         time.Time `json:"at"`
}

type ApprovalStepResponse struct {
	ID           string               `json:"id"`
	Order        int                  `json:"order"`
	RequiredRole string               `json:"required_role"`
	State        string               `json:"state"`
	ApproverID   string               `json:"approver_id,omitempty"`
	Comment      string               `json:"comment,omitempty"`
	ActedAt      *time.Time           `json:"acted_at,omitempty"`
	History      []StepActionResponse `json:"history,omitempty"`
}

type ApprovalFlowResponse struct {
	ID            string                 `json:"id"`
	FlowType      string                 `json:"flow_type"`
	State         string                 `json:"state"`
	InitiatorID   string                 `json:"initiator_id"`
	Payload       json.RawMessage        `json:"payload"`
	LineID        string                 `json:"line_id,omitempty"`
	MovementID    string                 `json:"movement_id,omitempty"`
	CurrentStep   int                    `json:"current_step"`
	Steps         []ApprovalStepResponse `json:"steps"`
	StartedAt     time.Time              `json:"started_at"`
	EndedAt       *time.Time             `json:"ended_at,omitempty"`
	ActionApplied bool                   `json:"action_applied"`
	Version       int64                  `json:"version"`
}

func FromApprovalFlow(f *entities.ApprovalFlow) ApprovalFlowResponse {
	steps := f.Steps()
	out := make([]ApprovalStepResponse, 0, len(steps))
	for _, s := range steps {
		step := ApprovalStepResponse{
			ID:           s.ID,
			Order:        s.Order,
			RequiredRole: s.RequiredRole,
			State:        string(s.State),
			ApproverID:   s.ApproverID,
			Comment:      s.Comment,
			ActedAt:      s.ActedAt,
		}
		for _, a := range s.History {
			step.History = append(step.History, StepActionResponse{
				State:      string(a.State),
				ApproverID: a.ApproverID,
				Comment:    a.Comment,
				At:         a.At,
			})
		}
		out = append(out, step)
	}

	return ApprovalFlowResponse{
		ID:            f.ID(),
		FlowType:      string(f.Type()),
		State:         string(f.State()),
		InitiatorID:   f.InitiatorID(),
		Payload:       json.RawMessage(f.Payload()),
		LineID:        f.LineID(),
		MovementID:    f.MovementID(),
		CurrentStep:   f.CurrentStep(),
		Steps:         out,
		StartedAt:     f.StartedAt(),
		EndedAt:       f.EndedAt(),
		ActionApplied: f.ActionApplied(),
		Version:       f.Version(),
	}
}

func FromApprovalFlows(flows []*entities.ApprovalFlow) []ApprovalFlowResponse {
	out := make([]ApprovalFlowResponse, 0, len(flows))
	for _, f := range flows {
		out = append(out, FromApprovalFlow(f))
	}
	return out
}
