package repository

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type movementItem struct {
	ID           string `dynamodbav:"id"`
	LineID       string `dynamodbav:"line_id"`
	Type         string `dynamodbav:"movement_type"`
	Amount       string `dynamodbav:"amount"`
	Concept      string `dynamodbav:"concept"`
	Numbering    string `dynamodbav:"numbering"`
	UserID       string `dynamodbav:"user_id"`
	ParentID     string `dynamodbav:"parent_id"`
	RegisteredAt string `dynamodbav:"registered_at"`
	DueDate      string `dynamodbav:"due_date,omitempty"`
	State        string `dynamodbav:"state"`
	Observation  string `dynamodbav:"observation"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	Version      int64  `dynamodbav:"version"`
}

// MovementDynamoRepository reads movements from DynamoDB (PK id).
type MovementDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMovementRepository = (*MovementDynamoRepository)(nil)

func NewMovementDynamoRepository(ddb DynamoAPI, tables config.Tables) *MovementDynamoRepository {
	return &MovementDynamoRepository{ddb: ddb, tableName: tables.Movements}
}

func (r *MovementDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Movement, error) {
	it, err := getItem[movementItem](ctx, r.ddb, r.tableName, id)
	if err != nil || it == nil {
		return nil, err
	}
	return fromMovementItem(*it)
}

func (r *MovementDynamoRepository) ListByLine(ctx context.Context, lineID string) ([]*entities.Movement, error) {
	return r.scan(ctx, "#line_id = :line_id",
		map[string]string{"#line_id": "line_id"},
		map[string]types.AttributeValue{":line_id": &types.AttributeValueMemberS{Value: lineID}})
}

func (r *MovementDynamoRepository) ListByParent(ctx context.Context, parentID string) ([]*entities.Movement, error) {
	return r.scan(ctx, "#parent_id = :parent_id",
		map[string]string{"#parent_id": "parent_id"},
		map[string]types.AttributeValue{":parent_id": &types.AttributeValueMemberS{Value: parentID}})
}

func (r *MovementDynamoRepository) ListDue(ctx context.Context, movementType entities.MovementType, now time.Time) ([]*entities.Movement, error) {
	return r.scan(ctx, "#type = :type AND #state = :active AND attribute_exists(#due_date) AND #due_date <= :now",
		map[string]string{
			"#type":     "movement_type",
			"#state":    "state",
			"#due_date": "due_date",
		},
		map[string]types.AttributeValue{
			":type":   &types.AttributeValueMemberS{Value: string(movementType)},
			":active": &types.AttributeValueMemberS{Value: string(entities.MovementStateActive)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(now)},
		})
}

func (r *MovementDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]*entities.Movement, error) {
	items, err := scanAll[movementItem](ctx, r.ddb, r.tableName, filter, names, values)
	if err != nil {
		return nil, err
	}
	sortByString(items, func(it movementItem) string { return it.RegisteredAt + it.Numbering })

	out := make([]*entities.Movement, 0, len(items))
	for _, it := range items {
		m, err := fromMovementItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func toMovementItem(m *entities.Movement) movementItem {
	s := m.Snapshot()
	return movementItem{
		ID:           s.ID,
		LineID:       s.LineID,
		Type:         string(s.Type),
		Amount:       s.Amount.StringFixed(2),
		Concept:      s.Concept,
		Numbering:    s.Numbering,
		UserID:       s.UserID,
		ParentID:     s.ParentID,
		RegisteredAt: formatTime(s.RegisteredAt),
		DueDate:      formatOptionalTime(s.DueDate),
		State:        string(s.State),
		Observation:  s.Observation,
		UpdatedAt:    formatTime(s.UpdatedAt),
		Version:      s.Version,
	}
}

func fromMovementItem(it movementItem) (*entities.Movement, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return nil, err
	}
	return entities.RehydrateMovement(entities.MovementSnapshot{
		ID:           it.ID,
		LineID:       it.LineID,
		Type:         entities.MovementType(it.Type),
		Amount:       amount,
		Concept:      it.Concept,
		Numbering:    it.Numbering,
		UserID:       it.UserID,
		ParentID:     it.ParentID,
		RegisteredAt: parseTime(it.RegisteredAt),
		DueDate:      parseOptionalTime(it.DueDate),
		State:        entities.MovementState(it.State),
		Observation:  it.Observation,
		UpdatedAt:    parseTime(it.UpdatedAt),
		Version:      it.Version,
	})
}
