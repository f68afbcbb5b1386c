package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/jobquery"
	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase/interfaces"
)

const (
	entityJob   = "JOB"
	entityStage = "STAGE"
	entityStep  = "STEP"
	entityPhoto = "PHOTO"
	entityRef   = "REF"
)

type jobItem struct {
	PK                 string `dynamodbav:"pk"`
	SK                 string `dynamodbav:"sk"`
	Entity             string `dynamodbav:"entity"`
	ID                 string `dynamodbav:"id"`
	JobNumber          string `dynamodbav:"job_number"`
	VehicleID          string `dynamodbav:"vehicle_id"`
	CustomerID         string `dynamodbav:"customer_id"`
	ReceiverID         string `dynamodbav:"receiver_id,omitempty"`
	InsuranceCompanyID string `dynamodbav:"insurance_company_id,omitempty"`
	Status             string `dynamodbav:"status"`
	PaymentType        string `dynamodbav:"payment_type"`
	ExcessFee          string `dynamodbav:"excess_fee"`
	StartDate          string `dynamodbav:"start_date,omitempty"`
	StartDay           string `dynamodbav:"start_day,omitempty"`
	EstimatedEndDate   string `dynamodbav:"estimated_end_date,omitempty"`
	ActualEndDate      string `dynamodbav:"actual_end_date,omitempty"`
	RepairDescription  string `dynamodbav:"repair_description,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	CurrentStageIndex  int    `dynamodbav:"current_stage_index"`
	IsFinished         bool   `dynamodbav:"is_finished"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type jobStageItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	Entity          string `dynamodbav:"entity"`
	ID              string `dynamodbav:"id"`
	JobID           string `dynamodbav:"job_id"`
	StageID         string `dynamodbav:"stage_id"`
	StageOrderIndex int    `dynamodbav:"stage_order_index"`
	IsLocked        bool   `dynamodbav:"is_locked"`
	IsCompleted     bool   `dynamodbav:"is_completed"`
	StartedAt       string `dynamodbav:"started_at,omitempty"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`
}

type jobStepItem struct {
	PK             string `dynamodbav:"pk"`
	SK             string `dynamodbav:"sk"`
	Entity         string `dynamodbav:"entity"`
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	JobStageID     string `dynamodbav:"job_stage_id"`
	StepTemplateID string `dynamodbav:"step_template_id"`
	StepOrderIndex int    `dynamodbav:"step_order_index"`
	Status         string `dynamodbav:"status"`
	EmployeeID     string `dynamodbav:"employee_id,omitempty"`
	CompletedAt    string `dynamodbav:"completed_at,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type jobPhotoItem struct {
	PK          string `dynamodbav:"pk"`
	SK          string `dynamodbav:"sk"`
	Entity      string `dynamodbav:"entity"`
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	PhotoTypeID string `dynamodbav:"photo_type_id"`
	OrderIndex  int    `dynamodbav:"order_index"`
	IsRequired  bool   `dynamodbav:"is_required"`
	IsCompleted bool   `dynamodbav:"is_completed"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	StorageKey  string `dynamodbav:"storage_key,omitempty"`
}

// refItem points a step or photo id at the job partition that owns it.
type refItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	Entity   string `dynamodbav:"entity"`
	JobID    string `dynamodbav:"job_id"`
	TargetSK string `dynamodbav:"target_sk"`
}

func jobPK(id string) string { return "JOB#" + id }

func stageSK(s entities.JobStage) string {
	return fmt.Sprintf("STAGE#%03d#%s", s.StageOrderIndex, s.ID)
}

func stepSK(stageOrder int, s entities.JobStep) string {
	return fmt.Sprintf("STEP#%03d#%03d#%s", stageOrder, s.StepOrderIndex, s.ID)
}

func photoSK(p entities.JobPhoto) string {
	return fmt.Sprintf("PHOTO#%03d#%s", p.OrderIndex, p.ID)
}

func refPK(entity, id string) string { return entity + "#" + id }

// JobDynamoRepository persists the job aggregate in a single table.
//
// Table requirements:
//   - PK: pk (string), SK: sk (string)
//   - partition JOB#<id> holds the JOB row and its STAGE, STEP and PHOTO rows
//   - partitions STEP#<id> and PHOTO#<id> hold one REF row each
type JobDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI, tables Tables) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tables: tables}
}

func (r *JobDynamoRepository) put(item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tables.Jobs),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
	}}, nil
}

// Create writes the whole graph in one transaction: unique guards, new
// vehicle/customer rows, the job row, stages, steps, photos and refs.
func (r *JobDynamoRepository) Create(ctx context.Context, in interfaces.NewJob) (entities.Job, error) {
	job := in.Job
	items := []types.TransactWriteItem{guardPut(r.tables.UniqueKeys, jobNumberKey(job.JobNumber), job.ID)}

	if c := in.NewCustomer; c != nil {
		put, err := rowStore{table: r.tables.Customers}.putItem(toCustomerItem(*c), false)
		if err != nil {
			return entities.Job{}, err
		}
		items = append(items, put, guardPut(r.tables.UniqueKeys, customerKey(c.Name, c.Phone), c.ID))
	}
	if v := in.NewVehicle; v != nil {
		put, err := rowStore{table: r.tables.Vehicles}.putItem(toVehicleItem(*v), false)
		if err != nil {
			return entities.Job{}, err
		}
		items = append(items, put, guardPut(r.tables.UniqueKeys, registrationKey(v.Registration), v.ID))
	}

	rows := []any{toJobItem(job)}
	for _, st := range job.Stages {
		rows = append(rows, toJobStageItem(st))
		for _, step := range st.Steps {
			sk := stepSK(st.StageOrderIndex, step)
			rows = append(rows,
				toJobStepItem(step, sk),
				refItem{PK: refPK(entityStep, step.ID), SK: entityRef, Entity: entityRef, JobID: job.ID, TargetSK: sk},
			)
		}
	}
	for _, p := range job.Photos {
		rows = append(rows,
			toJobPhotoItem(p),
			refItem{PK: refPK(entityPhoto, p.ID), SK: entityRef, Entity: entityRef, JobID: job.ID, TargetSK: photoSK(p)},
		)
	}
	for _, row := range rows {
		put, err := r.put(row)
		if err != nil {
			return entities.Job{}, err
		}
		items = append(items, put)
	}

	if err := transactWrite(ctx, r.ddb, items); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

// GetDetails reads the job partition with one consistent query.
func (r *JobDynamoRepository) GetDetails(ctx context.Context, id string) (entities.Job, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tables.Jobs),
		KeyConditionExpression:    aws.String("#pk = :pk"),
		ExpressionAttributeNames:  map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pk": str(jobPK(id))},
		ConsistentRead:            aws.Bool(true),
	})

	var (
		job    entities.Job
		stages []entities.JobStage
		steps  []entities.JobStep
		photos []entities.JobPhoto
	)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return entities.Job{}, err
		}
		for _, raw := range page.Items {
			switch entityOf(raw) {
			case entityJob:
				var it jobItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return entities.Job{}, err
				}
				job = fromJobItem(it)
			case entityStage:
				var it jobStageItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return entities.Job{}, err
				}
				stages = append(stages, fromJobStageItem(it))
			case entityStep:
				var it jobStepItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return entities.Job{}, err
				}
				steps = append(steps, fromJobStepItem(it))
			case entityPhoto:
				var it jobPhotoItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return entities.Job{}, err
				}
				photos = append(photos, fromJobPhotoItem(it))
			}
		}
	}
	if job.ID == "" {
		return entities.Job{}, nil
	}

	byID := make(map[string]int, len(stages))
	for i := range stages {
		stages[i].Steps = make([]entities.JobStep, 0)
		byID[stages[i].ID] = i
	}
	for _, step := range steps {
		if i, ok := byID[step.JobStageID]; ok {
			stages[i].Steps = append(stages[i].Steps, step)
		}
	}
	job.Stages = stages
	job.Photos = photos
	return job, nil
}

func entityOf(raw map[string]types.AttributeValue) string {
	if v, ok := raw["entity"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// List scans job rows. Insurance company and start-day bounds are
// evaluated by the store; everything else is left to the caller.
func (r *JobDynamoRepository) List(ctx context.Context, scan interfaces.JobScan) ([]entities.Job, error) {
	filter := "#entity = :job"
	names := map[string]string{"#entity": "entity"}
	values := map[string]types.AttributeValue{":job": str(entityJob)}
	if scan.InsuranceCompanyID != "" {
		filter += " AND #ic = :ic"
		names["#ic"] = "insurance_company_id"
		values[":ic"] = str(scan.InsuranceCompanyID)
	}
	if scan.StartDayFrom != nil {
		filter += " AND #sd >= :from"
		names["#sd"] = "start_day"
		values[":from"] = str(scan.StartDayFrom.Format(jobquery.DateLayout))
	}
	if scan.StartDayTo != nil {
		filter += " AND #sd <= :to"
		names["#sd"] = "start_day"
		values[":to"] = str(scan.StartDayTo.Format(jobquery.DateLayout))
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Jobs),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	jobs := make([]entities.Job, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
	}
	return jobs, nil
}

// resolveRef returns the job key of a step or photo row.
func (r *JobDynamoRepository) resolveRef(ctx context.Context, entity, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Jobs),
		Key: map[string]types.AttributeValue{
			"pk": str(refPK(entity, id)),
			"sk": str(entityRef),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(out.Item) == 0 {
		return nil, err
	}
	var ref refItem
	if err := attributevalue.UnmarshalMap(out.Item, &ref); err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		"pk": str(jobPK(ref.JobID)),
		"sk": str(ref.TargetSK),
	}, nil
}

func (r *JobDynamoRepository) getByRef(ctx context.Context, entity, id string, out any) (bool, error) {
	key, err := r.resolveRef(ctx, entity, id)
	if err != nil || key == nil {
		return false, err
	}
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Jobs),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(res.Item) == 0 {
		return false, err
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (r *JobDynamoRepository) GetStep(ctx context.Context, stepID string) (entities.JobStep, error) {
	var it jobStepItem
	found, err := r.getByRef(ctx, entityStep, stepID, &it)
	if err != nil || !found {
		return entities.JobStep{}, err
	}
	return fromJobStepItem(it), nil
}

func (r *JobDynamoRepository) UpdateStep(ctx context.Context, step entities.JobStep) (entities.JobStep, error) {
	key, err := r.resolveRef(ctx, entityStep, step.ID)
	if err != nil || key == nil {
		return entities.JobStep{}, err
	}

	var it jobStepItem
	found, err := r.update(ctx, key, &it, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		set := []string{"#status = :status", "#updated_at = :updated_at"}
		var remove []string
		vals := map[string]types.AttributeValue{
			":status":     str(string(step.Status)),
			":updated_at": str(now),
		}
		names := map[string]string{
			"#status":       "status",
			"#updated_at":   "updated_at",
			"#completed_at": "completed_at",
		}
		if step.EmployeeID != "" {
			set = append(set, "#employee_id = :employee_id")
			vals[":employee_id"] = str(step.EmployeeID)
			names["#employee_id"] = "employee_id"
		}
		if step.CompletedAt != nil {
			set = append(set, "#completed_at = :completed_at")
			vals[":completed_at"] = str(formatTime(*step.CompletedAt))
		} else {
			remove = append(remove, "#completed_at")
		}
		return setOrRemove(set, remove), vals, names
	})
	if err != nil || !found {
		return entities.JobStep{}, err
	}
	return fromJobStepItem(it), nil
}

func (r *JobDynamoRepository) GetPhoto(ctx context.Context, photoID string) (entities.JobPhoto, error) {
	var it jobPhotoItem
	found, err := r.getByRef(ctx, entityPhoto, photoID, &it)
	if err != nil || !found {
		return entities.JobPhoto{}, err
	}
	return fromJobPhotoItem(it), nil
}

func (r *JobDynamoRepository) UpdatePhoto(ctx context.Context, photo entities.JobPhoto) (entities.JobPhoto, error) {
	key, err := r.resolveRef(ctx, entityPhoto, photo.ID)
	if err != nil || key == nil {
		return entities.JobPhoto{}, err
	}

	var it jobPhotoItem
	found, err := r.update(ctx, key, &it, func(string) (string, map[string]types.AttributeValue, map[string]string) {
		set := []string{"#is_completed = :is_completed"}
		var remove []string
		vals := map[string]types.AttributeValue{":is_completed": boolean(photo.IsCompleted)}
		names := map[string]string{
			"#is_completed": "is_completed",
			"#completed_at": "completed_at",
		}
		if photo.CompletedAt != nil {
			set = append(set, "#completed_at = :completed_at")
			vals[":completed_at"] = str(formatTime(*photo.CompletedAt))
		} else {
			remove = append(remove, "#completed_at")
		}
		if photo.StorageKey != "" {
			set = append(set, "#storage_key = :storage_key")
			vals[":storage_key"] = str(photo.StorageKey)
			names["#storage_key"] = "storage_key"
		}
		return setOrRemove(set, remove), vals, names
	})
	if err != nil || !found {
		return entities.JobPhoto{}, err
	}
	return fromJobPhotoItem(it), nil
}

// SaveStageAdvance writes the completed stage, the unlocked next stage and
// the job summary in one transaction. The job row is conditioned on the
// previous current stage index.
func (r *JobDynamoRepository) SaveStageAdvance(ctx context.Context, jobID string, fromIndex int, adv workflow.StageAdvance) error {
	at := str(formatTime(adv.At))
	table := aws.String(r.tables.Jobs)
	pk := str(jobPK(jobID))

	jobSet := []string{"#status = :status", "#csi = :csi", "#updated_at = :at"}
	jobVals := map[string]types.AttributeValue{
		":status":  str(string(adv.Status)),
		":csi":     num(adv.CurrentStageIndex),
		":at":      at,
		":from":    num(fromIndex),
		":running": boolean(false),
	}
	jobNames := map[string]string{
		"#status":      "status",
		"#csi":         "current_stage_index",
		"#updated_at":  "updated_at",
		"#is_finished": "is_finished",
	}
	if adv.Finished {
		jobSet = append(jobSet, "#is_finished = :finished", "#actual_end_date = :at")
		jobVals[":finished"] = boolean(true)
		jobNames["#actual_end_date"] = "actual_end_date"
	}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:                 table,
			Key:                       map[string]types.AttributeValue{"pk": pk, "sk": str(entityJob)},
			UpdateExpression:          aws.String(setOrRemove(jobSet, nil)),
			ConditionExpression:       aws.String("#csi = :from AND #is_finished = :running"),
			ExpressionAttributeNames:  jobNames,
			ExpressionAttributeValues: jobVals,
		}},
		{Update: &types.Update{
			TableName:           table,
			Key:                 map[string]types.AttributeValue{"pk": pk, "sk": str(stageSK(adv.CompletedStage))},
			UpdateExpression:    aws.String("SET #locked = :false, #completed = :true, #started_at = :started_at, #completed_at = :at"),
			ConditionExpression: aws.String("#completed = :false"),
			ExpressionAttributeNames: map[string]string{
				"#locked":       "is_locked",
				"#completed":    "is_completed",
				"#started_at":   "started_at",
				"#completed_at": "completed_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false":      boolean(false),
				":true":       boolean(true),
				":started_at": str(formatTimePtr(adv.CompletedStage.StartedAt)),
				":at":         at,
			},
		}},
	}
	if next := adv.NextStage; next != nil {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:           table,
			Key:                 map[string]types.AttributeValue{"pk": pk, "sk": str(stageSK(*next))},
			UpdateExpression:    aws.String("SET #locked = :false, #started_at = :at"),
			ConditionExpression: aws.String("attribute_exists(#pk)"),
			ExpressionAttributeNames: map[string]string{
				"#pk":         "pk",
				"#locked":     "is_locked",
				"#started_at": "started_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false": boolean(false),
				":at":    at,
			},
		}})
	}
	return transactWrite(ctx, r.ddb, items)
}

// IsReferenced reports whether any job points at the given row. The first
// non-empty field of ref is used.
func (r *JobDynamoRepository) IsReferenced(ctx context.Context, ref interfaces.JobReference) (bool, error) {
	var attr, value string
	switch {
	case ref.VehicleID != "":
		attr, value = "vehicle_id", ref.VehicleID
	case ref.CustomerID != "":
		attr, value = "customer_id", ref.CustomerID
	case ref.InsuranceCompanyID != "":
		attr, value = "insurance_company_id", ref.InsuranceCompanyID
	case ref.ReceiverID != "":
		attr, value = "receiver_id", ref.ReceiverID
	default:
		return false, nil
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tables.Jobs),
		FilterExpression:          aws.String("#entity = :job AND #ref = :ref"),
		ExpressionAttributeNames:  map[string]string{"#entity": "entity", "#ref": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":job": str(entityJob), ":ref": str(value)},
		ProjectionExpression:      aws.String("#entity"),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return false, err
		}
		if len(page.Items) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// update applies an update expression to an existing row and decodes the
// new image into out. It reports false when the row does not exist.
func (r *JobDynamoRepository) update(
	ctx context.Context,
	key map[string]types.AttributeValue,
	out any,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (bool, error) {
	updateExpr, values, names := build(formatTime(timeNow()))

	res, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Jobs),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "pk"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailure(err) {
			return false, nil
		}
		return false, err
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Attributes, out)
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		PK:                 jobPK(j.ID),
		SK:                 entityJob,
		Entity:             entityJob,
		ID:                 j.ID,
		JobNumber:          j.JobNumber,
		VehicleID:          j.VehicleID,
		CustomerID:         j.CustomerID,
		ReceiverID:         j.ReceiverID,
		InsuranceCompanyID: j.InsuranceCompanyID,
		Status:             string(j.Status),
		PaymentType:        string(j.PaymentType),
		ExcessFee:          floatToString(j.ExcessFee),
		StartDate:          formatTimePtr(j.StartDate),
		EstimatedEndDate:   formatTimePtr(j.EstimatedEndDate),
		ActualEndDate:      formatTimePtr(j.ActualEndDate),
		RepairDescription:  j.RepairDescription,
		Notes:              j.Notes,
		CurrentStageIndex:  j.CurrentStageIndex,
		IsFinished:         j.IsFinished,
		CreatedAt:          formatTime(j.CreatedAt),
		UpdatedAt:          formatTime(j.UpdatedAt),
	}
	if j.StartDate != nil {
		it.StartDay = j.StartDate.UTC().Format(jobquery.DateLayout)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                 it.ID,
		JobNumber:          it.JobNumber,
		VehicleID:          it.VehicleID,
		CustomerID:         it.CustomerID,
		ReceiverID:         it.ReceiverID,
		InsuranceCompanyID: it.InsuranceCompanyID,
		Status:             entities.JobStatus(it.Status),
		PaymentType:        entities.PaymentType(it.PaymentType),
		ExcessFee:          parseFloat(it.ExcessFee),
		StartDate:          parseTimePtr(it.StartDate),
		EstimatedEndDate:   parseTimePtr(it.EstimatedEndDate),
		ActualEndDate:      parseTimePtr(it.ActualEndDate),
		RepairDescription:  it.RepairDescription,
		Notes:              it.Notes,
		CurrentStageIndex:  it.CurrentStageIndex,
		IsFinished:         it.IsFinished,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toJobStageItem(s entities.JobStage) jobStageItem {
	return jobStageItem{
		PK:              jobPK(s.JobID),
		SK:              stageSK(s),
		Entity:          entityStage,
		ID:              s.ID,
		JobID:           s.JobID,
		StageID:         s.StageID,
		StageOrderIndex: s.StageOrderIndex,
		IsLocked:        s.IsLocked,
		IsCompleted:     s.IsCompleted,
		StartedAt:       formatTimePtr(s.StartedAt),
		CompletedAt:     formatTimePtr(s.CompletedAt),
	}
}

func fromJobStageItem(it jobStageItem) entities.JobStage {
	return entities.JobStage{
		ID:              it.ID,
		JobID:           it.JobID,
		StageID:         it.StageID,
		StageOrderIndex: it.StageOrderIndex,
		IsLocked:        it.IsLocked,
		IsCompleted:     it.IsCompleted,
		StartedAt:       parseTimePtr(it.StartedAt),
		CompletedAt:     parseTimePtr(it.CompletedAt),
	}
}

func toJobStepItem(s entities.JobStep, sk string) jobStepItem {
	return jobStepItem{
		PK:             jobPK(s.JobID),
		SK:             sk,
		Entity:         entityStep,
		ID:             s.ID,
		JobID:          s.JobID,
		JobStageID:     s.JobStageID,
		StepTemplateID: s.StepTemplateID,
		StepOrderIndex: s.StepOrderIndex,
		Status:         string(s.Status),
		EmployeeID:     s.EmployeeID,
		CompletedAt:    formatTimePtr(s.CompletedAt),
		Notes:          s.Notes,
		UpdatedAt:      formatTime(s.UpdatedAt),
	}
}

func fromJobStepItem(it jobStepItem) entities.JobStep {
	return entities.JobStep{
		ID:             it.ID,
		JobID:          it.JobID,
		JobStageID:     it.JobStageID,
		StepTemplateID: it.StepTemplateID,
		StepOrderIndex: it.StepOrderIndex,
		Status:         entities.StepStatus(it.Status),
		EmployeeID:     it.EmployeeID,
		CompletedAt:    parseTimePtr(it.CompletedAt),
		Notes:          it.Notes,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func toJobPhotoItem(p entities.JobPhoto) jobPhotoItem {
	return jobPhotoItem{
		PK:          jobPK(p.JobID),
		SK:          photoSK(p),
		Entity:      entityPhoto,
		ID:          p.ID,
		JobID:       p.JobID,
		PhotoTypeID: p.PhotoTypeID,
		OrderIndex:  p.OrderIndex,
		IsRequired:  p.IsRequired,
		IsCompleted: p.IsCompleted,
		CompletedAt: formatTimePtr(p.CompletedAt),
		StorageKey:  p.StorageKey,
	}
}

func fromJobPhotoItem(it jobPhotoItem) entities.JobPhoto {
	return entities.JobPhoto{
		ID:          it.ID,
		JobID:       it.JobID,
		PhotoTypeID: it.PhotoTypeID,
		OrderIndex:  it.OrderIndex,
		IsRequired:  it.IsRequired,
		IsCompleted: it.IsCompleted,
		CompletedAt: parseTimePtr(it.CompletedAt),
		StorageKey:  it.StorageKey,
	}
}
