package repository

import (
	"context"
	"fmt"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoSequence is an atomic counter table (PK name, N value).
type DynamoSequence struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequence = (*DynamoSequence)(nil)

func NewDynamoSequence(ddb DynamoAPI, tables config.Tables) *DynamoSequence {
	return &DynamoSequence{ddb: ddb, tableName: tables.Sequences}
}

func (s *DynamoSequence) Next(ctx context.Context, key string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", key, err)
	}

	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("next sequence %s: missing counter value", key)
	}
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", key, err)
	}
	return n, nil
}
