package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

const paymentsJobIDIndex = "job_id-index"

type jobPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	JobID        string                 `dynamodbav:"job_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// JobPaymentDynamoRepository persists JobPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
type JobPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IJobPaymentRepository = (*JobPaymentDynamoRepository)(nil)

func NewJobPaymentDynamoRepository(ddb DynamoAPI, tables Tables) *JobPaymentDynamoRepository {
	return &JobPaymentDynamoRepository{ddb: ddb, tableName: tables.JobPayments}
}

func (r *JobPaymentDynamoRepository) Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error) {
	av, err := attributevalue.MarshalMap(toJobPaymentItem(p))
	if err != nil {
		return entities.JobPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionFailure(err) {
		return entities.JobPayment{}, fmt.Errorf("%w: payment %s", interfaces.ErrConflict, p.ID)
	}
	if err != nil {
		return entities.JobPayment{}, err
	}
	return p, nil
}

func (r *JobPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobPayment{}, nil
	}

	var it jobPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobPayment{}, err
	}
	return fromJobPaymentItem(it), nil
}

func (r *JobPaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.JobPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": str(jobID),
		},
	})

	items := make([]entities.JobPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it jobPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromJobPaymentItem(it))
		}
	}
	return items, nil
}

func toJobPaymentItem(p entities.JobPayment) jobPaymentItem {
	return jobPaymentItem{
		ID:           p.ID,
		JobID:        p.JobID,
		Amount:       floatToString(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromJobPaymentItem(it jobPaymentItem) entities.JobPayment {
	return entities.JobPayment{
		ID:           it.ID,
		JobID:        it.JobID,
		Amount:       parseFloat(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
