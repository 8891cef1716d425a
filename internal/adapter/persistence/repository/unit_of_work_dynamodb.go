package repository

import (
	"context"
	"errors"
	"fmt"
	"rubrox/internal/domain/entities"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUnitOfWork commits staged aggregates with one TransactWriteItems call.
//
// Every put is conditioned on the stored version matching the loaded one, or on
// the item not existing for new aggregates. New lines and movements also write
// a marker to the unique keys table so a budget code per year and a movement
// number can only be taken once.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables config.Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables config.Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables}
}

func (u *DynamoUnitOfWork) Begin(_ context.Context) interfaces.ITransaction {
	return &dynamoTransaction{uow: u}
}

type staged struct {
	describe string
	commit   func()
	items    []types.TransactWriteItem
	err      error
}

type dynamoTransaction struct {
	uow    *DynamoUnitOfWork
	staged []staged
}

func (t *dynamoTransaction) PutBudgetLine(line *entities.BudgetLine) {
	it := toBudgetLineItem(line)
	it.Version++
	s := t.put(t.uow.tables.BudgetLines, "budget line "+line.ID(), it, line.Version(), line.MarkCommitted)
	if line.Version() == 0 {
		s.items = append(s.items, t.marker(budgetCodeKey(it.Code, it.FiscalYear), line.ID()))
	}
	t.staged = append(t.staged, s)
}

func (t *dynamoTransaction) PutMovement(m *entities.Movement) {
	it := toMovementItem(m)
	it.Version++
	s := t.put(t.uow.tables.Movements, "movement "+m.Numbering(), it, m.Version(), m.MarkCommitted)
	if m.Version() == 0 {
		s.items = append(s.items, t.marker("numbering#"+it.Numbering, m.ID()))
	}
	t.staged = append(t.staged, s)
}

func (t *dynamoTransaction) PutApprovalFlow(f *entities.ApprovalFlow) {
	it := toApprovalFlowItem(f)
	it.Version++
	t.staged = append(t.staged, t.put(t.uow.tables.ApprovalFlows, "approval flow "+f.ID(), it, f.Version(), f.MarkCommitted))
}

func (t *dynamoTransaction) put(table, describe string, item any, loadedVersion int64, commit func()) staged {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return staged{describe: describe, err: err}
	}

	put := &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if loadedVersion == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
	} else {
		put.ConditionExpression = aws.String("#version = :version")
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(loadedVersion, 10)},
		}
	}
	return staged{describe: describe, commit: commit, items: []types.TransactWriteItem{{Put: put}}}
}

func (t *dynamoTransaction) marker(key, refID string) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(t.uow.tables.UniqueKeys),
		Item: map[string]types.AttributeValue{
			"key":    &types.AttributeValueMemberS{Value: key},
			"ref_id": &types.AttributeValueMemberS{Value: refID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{"#key": "key"},
	}}
}

func (t *dynamoTransaction) Commit(ctx context.Context) error {
	var (
		items     []types.TransactWriteItem
		describes []string
	)
	for _, s := range t.staged {
		if s.err != nil {
			return fmt.Errorf("encode %s: %w", s.describe, s.err)
		}
		for range s.items {
			describes = append(describes, s.describe)
		}
		items = append(items, s.items...)
	}
	if len(items) == 0 {
		return nil
	}

	_, err := t.uow.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return translateTransactionError(err, describes)
	}
	for _, s := range t.staged {
		s.commit()
	}
	return nil
}

func translateTransactionError(err error, describes []string) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		code := aws.ToString(reason.Code)
		if code != "ConditionalCheckFailed" && code != "TransactionConflict" {
			continue
		}
		what := "an aggregate"
		if i < len(describes) {
			what = describes[i]
		}
		return interfaces.ErrVersionConflict.Withf("%s was modified concurrently or its unique key is taken", what)
	}
	return interfaces.ErrVersionConflict
}
