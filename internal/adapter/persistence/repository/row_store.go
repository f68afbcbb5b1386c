package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/usecase/interfaces"
)

// rowStore is an id-keyed table whose rows may own a unique-key guard in
// the unique_keys table. An empty guard key means the row has none.
type rowStore struct {
	ddb    DynamoAPI
	table  string
	guards string
}

func (s rowStore) get(ctx context.Context, id string, out any) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

// putItem returns the transactional put of a row.
func (s rowStore) putItem(item any, mustExist bool) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	cond := "attribute_not_exists(#id)"
	if mustExist {
		cond = "attribute_exists(#id)"
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(s.table),
		Item:                     av,
		ConditionExpression:      aws.String(cond),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (s rowStore) create(ctx context.Context, id string, item any, guardKey string) error {
	put, err := s.putItem(item, false)
	if err != nil {
		return err
	}
	if guardKey == "" {
		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                put.Put.TableName,
			Item:                     put.Put.Item,
			ConditionExpression:      put.Put.ConditionExpression,
			ExpressionAttributeNames: put.Put.ExpressionAttributeNames,
		})
		if isConditionFailure(err) {
			return fmt.Errorf("%w: id %s", interfaces.ErrConflict, id)
		}
		return err
	}
	return transactWrite(ctx, s.ddb, []types.TransactWriteItem{put, guardPut(s.guards, guardKey, id)})
}

// replace overwrites an existing row, moving its guard from oldKey to
// newKey when they differ. It reports false when the row is gone.
func (s rowStore) replace(ctx context.Context, id string, item any, oldKey, newKey string) (bool, error) {
	put, err := s.putItem(item, true)
	if err != nil {
		return false, err
	}
	if oldKey == newKey {
		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                put.Put.TableName,
			Item:                     put.Put.Item,
			ConditionExpression:      put.Put.ConditionExpression,
			ExpressionAttributeNames: put.Put.ExpressionAttributeNames,
		})
		if isConditionFailure(err) {
			return false, nil
		}
		return err == nil, err
	}

	items := []types.TransactWriteItem{put}
	if oldKey != "" {
		items = append(items, guardDelete(s.guards, oldKey))
	}
	if newKey != "" {
		items = append(items, guardPut(s.guards, newKey, id))
	}
	if err := transactWrite(ctx, s.ddb, items); err != nil {
		return false, err
	}
	return true, nil
}

// remove deletes a row and its guard. It reports false when the row was
// already gone.
func (s rowStore) remove(ctx context.Context, id, guardKey string) (bool, error) {
	del := types.Delete{
		TableName:                aws.String(s.table),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	var err error
	if guardKey == "" {
		_, err = s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:                del.TableName,
			Key:                      del.Key,
			ConditionExpression:      del.ConditionExpression,
			ExpressionAttributeNames: del.ExpressionAttributeNames,
		})
	} else {
		_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{{Delete: &del}, guardDelete(s.guards, guardKey)},
		})
	}
	if isConditionFailure(err) {
		return false, nil
	}
	return err == nil, err
}

func (s rowStore) scan(ctx context.Context, each func(map[string]types.AttributeValue) error) error {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{TableName: aws.String(s.table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, raw := range page.Items {
			if err := each(raw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s rowStore) batchGet(ctx context.Context, ids []string, each func(map[string]types.AttributeValue) error) error {
	for _, part := range chunk(ids, maxBatchGetKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(part))
		for _, id := range part {
			keys = append(keys, idKey(id))
		}
		req := map[string]types.KeysAndAttributes{s.table: {Keys: keys}}
		for len(req) > 0 {
			out, err := s.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: req})
			if err != nil {
				return err
			}
			for _, raw := range out.Responses[s.table] {
				if err := each(raw); err != nil {
					return err
				}
			}
			req = out.UnprocessedKeys
		}
	}
	return nil
}

func batchPut(ctx context.Context, ddb DynamoAPI, table string, items []any) error {
	reqs := make([]types.WriteRequest, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, part := range chunk(reqs, maxBatchWriteItems) {
		pending := map[string][]types.WriteRequest{table: part}
		for len(pending) > 0 {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
