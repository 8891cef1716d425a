package repository

import (
	"context"
	"rubrox/internal/domain/entities"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type budgetLineItem struct {
	ID            string   `dynamodbav:"id"`
	Code          string   `dynamodbav:"code"`
	Name          string   `dynamodbav:"name"`
	Description   string   `dynamodbav:"description"`
	FiscalYear    int      `dynamodbav:"fiscal_year"`
	LineType      string   `dynamodbav:"line_type"`
	FundingSource string   `dynamodbav:"funding_source"`
	Initial       string   `dynamodbav:"initial_balance"`
	Committed     string   `dynamodbav:"committed_balance"`
	Executed      string   `dynamodbav:"executed_balance"`
	State         string   `dynamodbav:"state"`
	ParentID      string   `dynamodbav:"parent_id"`
	ChildIDs      []string `dynamodbav:"child_ids"`
	CreatedBy     string   `dynamodbav:"created_by"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
	Version       int64    `dynamodbav:"version"`
}

// BudgetLineDynamoRepository reads budget lines from DynamoDB.
//
// Table requirements:
//   - budget lines: PK id (string)
//   - unique keys: PK key (string); code lookups resolve through the
//     "budget_code#<code>#<year>" marker written with the line
type BudgetLineDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	uniqueTable string
}

var _ interfaces.IBudgetLineRepository = (*BudgetLineDynamoRepository)(nil)

func NewBudgetLineDynamoRepository(ddb DynamoAPI, tables config.Tables) *BudgetLineDynamoRepository {
	return &BudgetLineDynamoRepository{
		ddb:         ddb,
		tableName:   tables.BudgetLines,
		uniqueTable: tables.UniqueKeys,
	}
}

func (r *BudgetLineDynamoRepository) GetByID(ctx context.Context, id string) (*entities.BudgetLine, error) {
	it, err := getItem[budgetLineItem](ctx, r.ddb, r.tableName, id)
	if err != nil || it == nil {
		return nil, err
	}
	return fromBudgetLineItem(*it)
}

func (r *BudgetLineDynamoRepository) GetByCode(ctx context.Context, code entities.BudgetCode, year entities.FiscalYear) (*entities.BudgetLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.uniqueTable),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: budgetCodeKey(code.String(), year.Int())},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	ref, ok := out.Item["ref_id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, nil
	}
	return r.GetByID(ctx, ref.Value)
}

func (r *BudgetLineDynamoRepository) ListByFiscalYear(ctx context.Context, year entities.FiscalYear) ([]*entities.BudgetLine, error) {
	return r.scan(ctx, "#fiscal_year = :fiscal_year",
		map[string]string{"#fiscal_year": "fiscal_year"},
		map[string]types.AttributeValue{
			":fiscal_year": &types.AttributeValueMemberN{Value: strconv.Itoa(year.Int())},
		})
}

func (r *BudgetLineDynamoRepository) ListChildren(ctx context.Context, parentID string) ([]*entities.BudgetLine, error) {
	return r.scan(ctx, "#parent_id = :parent_id",
		map[string]string{"#parent_id": "parent_id"},
		map[string]types.AttributeValue{
			":parent_id": &types.AttributeValueMemberS{Value: parentID},
		})
}

func (r *BudgetLineDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]*entities.BudgetLine, error) {
	items, err := scanAll[budgetLineItem](ctx, r.ddb, r.tableName, filter, names, values)
	if err != nil {
		return nil, err
	}
	sortByString(items, func(it budgetLineItem) string { return it.Code })

	out := make([]*entities.BudgetLine, 0, len(items))
	for _, it := range items {
		l, err := fromBudgetLineItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func budgetCodeKey(code string, year int) string {
	return "budget_code#" + code + "#" + strconv.Itoa(year)
}

func toBudgetLineItem(l *entities.BudgetLine) budgetLineItem {
	s := l.Snapshot()
	return budgetLineItem{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Description:   s.Description,
		FiscalYear:    s.FiscalYear,
		LineType:      string(s.LineType),
		FundingSource: string(s.FundingSource),
		Initial:       s.Initial.StringFixed(2),
		Committed:     s.Committed.StringFixed(2),
		Executed:      s.Executed.StringFixed(2),
		State:         string(s.State),
		ParentID:      s.ParentID,
		ChildIDs:      s.ChildIDs,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
		Version:       s.Version,
	}
}

func fromBudgetLineItem(it budgetLineItem) (*entities.BudgetLine, error) {
	initial, err := decimal.NewFromString(it.Initial)
	if err != nil {
		return nil, err
	}
	committed, err := decimal.NewFromString(it.Committed)
	if err != nil {
		return nil, err
	}
	executed, err := decimal.NewFromString(it.Executed)
	if err != nil {
		return nil, err
	}
	return entities.RehydrateBudgetLine(entities.BudgetLineSnapshot{
		ID:            it.ID,
		Code:          it.Code,
		Name:          it.Name,
		Description:   it.Description,
		FiscalYear:    it.FiscalYear,
		LineType:      entities.LineType(it.LineType),
		FundingSource: entities.FundingSource(it.FundingSource),
		Initial:       initial,
		Committed:     committed,
		Executed:      executed,
		State:         entities.LineState(it.State),
		ParentID:      it.ParentID,
		ChildIDs:      it.ChildIDs,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		Version:       it.Version,
	})
}
