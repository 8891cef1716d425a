package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table keyed by their primary key value.
// Scans ignore filters and page one item at a time.
type fakeDynamo struct {
	mu        sync.Mutex
	tables    map[string]map[string]map[string]types.AttributeValue
	scans     []*dynamodb.ScanInput
	transacts []*dynamodb.TransactWriteItemsInput
	txErr     error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func primaryKey(item map[string]types.AttributeValue) string {
	for _, attr := range []string{"id", "key", "name"} {
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

func (f *fakeDynamo) put(table string, item map[string]types.AttributeValue) {
	if f.tables[table] == nil {
		f.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	f.tables[table][primaryKey(item)] = item
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.tables[aws.ToString(in.TableName)][primaryKey(in.Key)]}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, in)

	var keys []string
	for k := range f.tables[aws.ToString(in.TableName)] {
		keys = append(keys, k)
	}
	sortByString(keys, func(k string) string { return k })

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	out := &dynamodb.ScanOutput{}
	if start < len(keys) {
		out.Items = []map[string]types.AttributeValue{f.tables[aws.ToString(in.TableName)][keys[start]]}
		if start+1 < len(keys) {
			out.LastEvaluatedKey = map[string]types.AttributeValue{
				"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(start + 1)},
			}
		}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := aws.ToString(in.TableName)
	key := primaryKey(in.Key)
	item := f.tables[table][key]
	n := int64(0)
	if item != nil {
		n, _ = strconv.ParseInt(item["value"].(*types.AttributeValueMemberN).Value, 10, 64)
	}
	n++
	value := &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
	f.put(table, map[string]types.AttributeValue{"name": in.Key["name"], "value": value})
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{"value": value}}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transacts = append(f.transacts, in)
	if f.txErr != nil {
		return nil, f.txErr
	}
	for _, it := range in.TransactItems {
		f.put(aws.ToString(it.Put.TableName), it.Put.Item)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
