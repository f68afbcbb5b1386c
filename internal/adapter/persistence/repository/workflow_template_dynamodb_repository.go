package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

const (
	kindStage     = "STAGE"
	kindStep      = "STEP"
	kindPhotoType = "PHOTO_TYPE"
)

type templateItem struct {
	Kind        string `dynamodbav:"pk"`
	ID          string `dynamodbav:"sk"`
	Code        string `dynamodbav:"code,omitempty"`
	Name        string `dynamodbav:"name"`
	StageID     string `dynamodbav:"stage_id,omitempty"`
	OrderIndex  int    `dynamodbav:"order_index"`
	IsSkippable bool   `dynamodbav:"is_skippable"`
	IsRequired  bool   `dynamodbav:"is_required"`
}

// WorkflowTemplateDynamoRepository stores stages, step templates and photo
// types in one table.
//
// Table requirements:
//   - PK: pk (string) one of STAGE, STEP, PHOTO_TYPE
//   - SK: sk (string) template id
type WorkflowTemplateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWorkflowTemplateRepository = (*WorkflowTemplateDynamoRepository)(nil)

func NewWorkflowTemplateDynamoRepository(ddb DynamoAPI, tables Tables) *WorkflowTemplateDynamoRepository {
	return &WorkflowTemplateDynamoRepository{ddb: ddb, tableName: tables.WorkflowTemplates}
}

func (r *WorkflowTemplateDynamoRepository) ListStagesOrdered(ctx context.Context) ([]entities.Stage, error) {
	items, err := queryPartition[templateItem](ctx, r.ddb, r.tableName, kindStage)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Stage, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Stage{ID: it.ID, Code: it.Code, Name: it.Name, OrderIndex: it.OrderIndex})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *WorkflowTemplateDynamoRepository) ListStepTemplates(ctx context.Context, stageID string) ([]entities.StepTemplate, error) {
	all, err := r.listSteps(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StepTemplate, 0)
	for _, st := range all {
		if st.StageID == stageID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *WorkflowTemplateDynamoRepository) listSteps(ctx context.Context) ([]entities.StepTemplate, error) {
	items, err := queryPartition[templateItem](ctx, r.ddb, r.tableName, kindStep)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StepTemplate, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StepTemplate{
			ID:          it.ID,
			StageID:     it.StageID,
			Name:        it.Name,
			OrderIndex:  it.OrderIndex,
			IsSkippable: it.IsSkippable,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *WorkflowTemplateDynamoRepository) ListPhotoTypes(ctx context.Context) ([]entities.PhotoType, error) {
	items, err := queryPartition[templateItem](ctx, r.ddb, r.tableName, kindPhotoType)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PhotoType, 0, len(items))
	for _, it := range items {
		out = append(out, entities.PhotoType{
			ID:         it.ID,
			Code:       it.Code,
			Name:       it.Name,
			OrderIndex: it.OrderIndex,
			IsRequired: it.IsRequired,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *WorkflowTemplateDynamoRepository) GetCatalog(ctx context.Context) (entities.WorkflowCatalog, error) {
	stages, err := r.ListStagesOrdered(ctx)
	if err != nil {
		return entities.WorkflowCatalog{}, err
	}
	steps, err := r.listSteps(ctx)
	if err != nil {
		return entities.WorkflowCatalog{}, err
	}
	photos, err := r.ListPhotoTypes(ctx)
	if err != nil {
		return entities.WorkflowCatalog{}, err
	}
	return entities.WorkflowCatalog{Stages: stages, StepTemplates: steps, PhotoTypes: photos}, nil
}

// SaveCatalog upserts every template. Ids are stable across runs so a
// repeated bootstrap overwrites in place.
func (r *WorkflowTemplateDynamoRepository) SaveCatalog(ctx context.Context, catalog entities.WorkflowCatalog) error {
	items := make([]any, 0, len(catalog.Stages)+len(catalog.StepTemplates)+len(catalog.PhotoTypes))
	for _, s := range catalog.Stages {
		items = append(items, templateItem{Kind: kindStage, ID: s.ID, Code: s.Code, Name: s.Name, OrderIndex: s.OrderIndex})
	}
	for _, st := range catalog.StepTemplates {
		items = append(items, templateItem{
			Kind:        kindStep,
			ID:          st.ID,
			Name:        st.Name,
			StageID:     st.StageID,
			OrderIndex:  st.OrderIndex,
			IsSkippable: st.IsSkippable,
		})
	}
	for _, pt := range catalog.PhotoTypes {
		items = append(items, templateItem{
			Kind:       kindPhotoType,
			ID:         pt.ID,
			Code:       pt.Code,
			Name:       pt.Name,
			OrderIndex: pt.OrderIndex,
			IsRequired: pt.IsRequired,
		})
	}
	return batchPut(ctx, r.ddb, r.tableName, items)
}

// queryPartition reads every row of one pk, strongly consistent.
func queryPartition[T any](ctx context.Context, ddb DynamoAPI, table, pk string) ([]T, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String("#pk = :pk"),
		ExpressionAttributeNames:  map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pk": str(pk)},
		ConsistentRead:            aws.Bool(true),
	})
	out := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it T
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}
	}
	return out, nil
}
