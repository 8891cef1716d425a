package repository

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type stepActionItem struct {
	State      string `dynamodbav:"state"`
	ApproverID string `dynamodbav:"approver_id"`
	Comment    string `dynamodbav:"comment"`
	At         string `dynamodbav:"at"`
}

type stepItem struct {
	ID           string           `dynamodbav:"id"`
	Order        int              `dynamodbav:"order"`
	RequiredRole string           `dynamodbav:"required_role"`
	State        string           `dynamodbav:"state"`
	ApproverID   string           `dynamodbav:"approver_id"`
	Comment      string           `dynamodbav:"comment"`
	ActedAt      string           `dynamodbav:"acted_at,omitempty"`
	History      []stepActionItem `dynamodbav:"history,omitempty"`
}

// approvalFlowItem mirrors the role of the current pending step in
// pending_role so inbox scans can filter on it.
type approvalFlowItem struct {
	ID          string     `dynamodbav:"id"`
	Type        string     `dynamodbav:"flow_type"`
	State       string     `dynamodbav:"state"`
	InitiatorID string     `dynamodbav:"initiator_id"`
	Payload     string     `dynamodbav:"payload"`
	LineID      string     `dynamodbav:"line_id"`
	MovementID  string     `dynamodbav:"movement_id"`
	Steps       []stepItem `dynamodbav:"steps"`
	CurrentStep int        `dynamodbav:"current_step"`
	PendingRole string     `dynamodbav:"pending_role"`
	StartedAt   string     `dynamodbav:"started_at"`
	EndedAt     string     `dynamodbav:"ended_at,omitempty"`
	Applied     bool       `dynamodbav:"action_applied"`
	Version     int64      `dynamodbav:"version"`
}

// ApprovalFlowDynamoRepository reads approval flows from DynamoDB (PK id).
type ApprovalFlowDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApprovalFlowRepository = (*ApprovalFlowDynamoRepository)(nil)

func NewApprovalFlowDynamoRepository(ddb DynamoAPI, tables config.Tables) *ApprovalFlowDynamoRepository {
	return &ApprovalFlowDynamoRepository{ddb: ddb, tableName: tables.ApprovalFlows}
}

func (r *ApprovalFlowDynamoRepository) GetByID(ctx context.Context, id string) (*entities.ApprovalFlow, error) {
	it, err := getItem[approvalFlowItem](ctx, r.ddb, r.tableName, id)
	if err != nil || it == nil {
		return nil, err
	}
	return fromApprovalFlowItem(*it)
}

func (r *ApprovalFlowDynamoRepository) ListActionableByRole(ctx context.Context, role string) ([]*entities.ApprovalFlow, error) {
	flows, err := r.scan(ctx, "#pending_role = :role AND #state IN (:pending, :in_review, :returned)",
		map[string]string{"#pending_role": "pending_role", "#state": "state"},
		map[string]types.AttributeValue{
			":role":      &types.AttributeValueMemberS{Value: role},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.FlowStatePending)},
			":in_review": &types.AttributeValueMemberS{Value: string(entities.FlowStateInReview)},
			":returned":  &types.AttributeValueMemberS{Value: string(entities.FlowStateReturned)},
		})
	if err != nil {
		return nil, err
	}
	out := flows[:0]
	for _, f := range flows {
		if f.AwaitsRole(role) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *ApprovalFlowDynamoRepository) ListByLine(ctx context.Context, lineID string) ([]*entities.ApprovalFlow, error) {
	return r.scan(ctx, "#line_id = :line_id",
		map[string]string{"#line_id": "line_id"},
		map[string]types.AttributeValue{":line_id": &types.AttributeValueMemberS{Value: lineID}})
}

func (r *ApprovalFlowDynamoRepository) ListByState(ctx context.Context, state entities.FlowState) ([]*entities.ApprovalFlow, error) {
	return r.scan(ctx, "#state = :state",
		map[string]string{"#state": "state"},
		map[string]types.AttributeValue{":state": &types.AttributeValueMemberS{Value: string(state)}})
}

func (r *ApprovalFlowDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]*entities.ApprovalFlow, error) {
	items, err := scanAll[approvalFlowItem](ctx, r.ddb, r.tableName, filter, names, values)
	if err != nil {
		return nil, err
	}
	sortByString(items, func(it approvalFlowItem) string { return it.StartedAt })

	out := make([]*entities.ApprovalFlow, 0, len(items))
	for _, it := range items {
		f, err := fromApprovalFlowItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func toApprovalFlowItem(f *entities.ApprovalFlow) approvalFlowItem {
	s := f.Snapshot()
	steps := make([]stepItem, 0, len(s.Steps))
	for _, st := range s.Steps {
		history := make([]stepActionItem, 0, len(st.History))
		for _, h := range st.History {
			history = append(history, stepActionItem{
				State:      string(h.State),
				ApproverID: h.ApproverID,
				Comment:    h.Comment,
				At:         formatTime(h.At),
			})
		}
		steps = append(steps, stepItem{
			ID:           st.ID,
			Order:        st.Order,
			RequiredRole: st.RequiredRole,
			State:        string(st.State),
			ApproverID:   st.ApproverID,
			Comment:      st.Comment,
			ActedAt:      formatOptionalTime(st.ActedAt),
			History:      history,
		})
	}

	it := approvalFlowItem{
		ID:          s.ID,
		Type:        string(s.Type),
		State:       string(s.State),
		InitiatorID: s.InitiatorID,
		Payload:     s.Payload,
		LineID:      s.LineID,
		MovementID:  s.MovementID,
		Steps:       steps,
		CurrentStep: s.CurrentStep,
		StartedAt:   formatTime(s.StartedAt),
		EndedAt:     formatOptionalTime(s.EndedAt),
		Applied:     s.ActionApplied,
		Version:     s.Version,
	}
	if step, ok := f.PendingStep(); ok && s.State.IsActionable() {
		it.PendingRole = step.RequiredRole
	}
	return it
}

func fromApprovalFlowItem(it approvalFlowItem) (*entities.ApprovalFlow, error) {
	steps := make([]entities.ApprovalStep, 0, len(it.Steps))
	for _, st := range it.Steps {
		var history []entities.StepAction
		for _, h := range st.History {
			history = append(history, entities.StepAction{
				State:      entities.StepState(h.State),
				ApproverID: h.ApproverID,
				Comment:    h.Comment,
				At:         parseTime(h.At),
			})
		}
		steps = append(steps, entities.ApprovalStep{
			ID:           st.ID,
			Order:        st.Order,
			RequiredRole: st.RequiredRole,
			State:        entities.StepState(st.State),
			ApproverID:   st.ApproverID,
			Comment:      st.Comment,
			ActedAt:      parseOptionalTime(st.ActedAt),
			History:      history,
		})
	}
	return entities.RehydrateApprovalFlow(entities.ApprovalFlowSnapshot{
		ID:            it.ID,
		Type:          entities.FlowType(it.Type),
		State:         entities.FlowState(it.State),
		InitiatorID:   it.InitiatorID,
		Payload:       it.Payload,
		LineID:        it.LineID,
		MovementID:    it.MovementID,
		Steps:         steps,
		CurrentStep:   it.CurrentStep,
		StartedAt:     parseTime(it.StartedAt),
		EndedAt:       parseOptionalTime(it.EndedAt),
		ActionApplied: it.Applied,
		Version:       it.Version,
	})
}
