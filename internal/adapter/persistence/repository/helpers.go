package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/usecase/interfaces"
)

// maxTransactItems is the DynamoDB limit of actions per TransactWriteItems.
const maxTransactItems = 100

// maxBatchGetKeys is the DynamoDB limit of keys per BatchGetItem.
const maxBatchGetKeys = 100

// maxBatchWriteItems is the DynamoDB limit of requests per BatchWriteItem.
const maxBatchWriteItems = 25

var timeNow = func() time.Time { return time.Now().UTC() }

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, in *dynamodb.BatchGetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// Tables holds the physical table names.
type Tables struct {
	Jobs               string
	UniqueKeys         string
	Customers          string
	Vehicles           string
	Employees          string
	InsuranceCompanies string
	JobPayments        string
	WorkflowTemplates  string
	VehicleCatalog     string
}

// NewTables builds the table names with an optional environment prefix.
func NewTables(prefix string) Tables {
	name := func(base string) string { return prefix + base }
	return Tables{
		Jobs:               name("jobs"),
		UniqueKeys:         name("unique_keys"),
		Customers:          name("customers"),
		Vehicles:           name("vehicles"),
		Employees:          name("employees"),
		InsuranceCompanies: name("insurance_companies"),
		JobPayments:        name("job_payments"),
		WorkflowTemplates:  name("workflow_templates"),
		VehicleCatalog:     name("vehicle_catalog"),
	}
}

// Unique-key guard values. Each is stored as the pk of a unique_keys row.
func jobNumberKey(n string) string { return "job_number#" + n }

func registrationKey(reg string) string { return "vehicle_registration#" + reg }

func customerKey(name, phone string) string {
	return "customer#" + strings.ToLower(strings.TrimSpace(name)) + "|" + strings.TrimSpace(phone)
}

func usernameKey(u string) string { return "employee_username#" + strings.ToLower(u) }

type uniqueKeyItem struct {
	PK      string `dynamodbav:"pk"`
	OwnerID string `dynamodbav:"owner_id"`
}

func guardPut(table, key, ownerID string) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(table),
		Item: map[string]types.AttributeValue{
			"pk":       str(key),
			"owner_id": str(ownerID),
		},
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
	}}
}

func guardDelete(table, key string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(table),
		Key:       map[string]types.AttributeValue{"pk": str(key)},
	}}
}

// guardOwner resolves a unique key to the id of the row holding it.
func guardOwner(ctx context.Context, ddb DynamoAPI, table, key string) (string, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            map[string]types.AttributeValue{"pk": str(key)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(out.Item) == 0 {
		return "", err
	}
	var it uniqueKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.OwnerID, nil
}

func transactWrite(ctx context.Context, ddb DynamoAPI, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return fmt.Errorf("%w: %d actions, limit %d", interfaces.ErrTransactionTooLarge, len(items), maxTransactItems)
	}
	_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if isConditionFailure(err) {
		return fmt.Errorf("%w: %v", interfaces.ErrConflict, err)
	}
	return err
}

// isConditionFailure reports a failed condition expression, either on a
// single write or as a cancellation reason of a transaction.
func isConditionFailure(err error) bool {
	if err == nil {
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if aws.ToString(r.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func num(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func boolean(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": str(id)}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// setOrRemove renders "SET a, b REMOVE c" for an update expression.
func setOrRemove(set, remove []string) string {
	expr := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}
	return expr
}

func chunk[T any](in []T, size int) [][]T {
	var out [][]T
	for len(in) > size {
		out = append(out, in[:size])
		in = in[size:]
	}
	if len(in) > 0 {
		out = append(out, in)
	}
	return out
}
