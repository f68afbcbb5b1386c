package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/jobquery"
	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/api"
	"oficina_jobs/pkg/logger"
	"oficina_jobs/pkg/tracing"
)

var (
	ErrJobNotFound          = fmt.Errorf("job %w", ErrNotFound)
	ErrStepNotFound         = fmt.Errorf("step %w", ErrNotFound)
	ErrPhotoNotFound        = fmt.Errorf("photo %w", ErrNotFound)
	ErrVehicleRefRequired   = fmt.Errorf("%w: vehicleId or vehicle.registration is required", ErrValidation)
	ErrCustomerRefRequired  = fmt.Errorf("%w: customerId or customer name and phone are required", ErrValidation)
	ErrJobAlreadyExists     = fmt.Errorf("%w: job number, vehicle registration or customer already exists", ErrConflict)
	ErrPhotoStorageDisabled = fmt.Errorf("%w: photo storage not configured", ErrUnavailable)
)

// VehicleInput carries vehicle fields. Inline on a job it is resolved by
// registration and CustomerID is ignored.
type VehicleInput struct {
	CustomerID    string
	Registration  string
	Brand         string
	Model         string
	Type          string
	Color         string
	Year          int
	ChassisNumber string
	VINNumber     string
}

// CustomerInput is an inline customer reference resolved by (name, phone).
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

type CreateJobInput struct {
	VehicleID          string
	Vehicle            *VehicleInput
	CustomerID         string
	Customer           *CustomerInput
	ReceiverID         string
	InsuranceCompanyID string
	JobNumber          string
	Status             string
	PaymentType        string
	ExcessFee          float64
	RepairDescription  string
	Notes              string
	StartDate          *time.Time
	EstimatedEndDate   *time.Time
}

// ListJobsInput carries the raw listing parameters.
type ListJobsInput struct {
	Status             string
	Search             string
	Registration       string
	CustomerName       string
	ChassisNumber      string
	VINNumber          string
	JobNumber          string
	InsuranceCompanyID string
	StartDateFrom      string
	StartDateTo        string
	SortBy             string
	SortOrder          string
	Page               api.PageRequest
}

// JobList is one page of jobs with their status facets.
type JobList struct {
	api.Page[entities.Job]
	StatusCounts jobquery.StatusCounts
}

// PhotoUpload is a presigned direct-upload target.
type PhotoUpload struct {
	URL        string
	StorageKey string
	ExpiresAt  time.Time
}

// IJobUseCase exposes the job workflow operations.
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetJobDetails(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context, in ListJobsInput) (JobList, error)
	UpdateStepStatus(ctx context.Context, stepID, status, employeeID string) (entities.JobStep, error)
	AdvanceStage(ctx context.Context, jobID string) (entities.Job, error)
	UpdatePhoto(ctx context.Context, photoID string, completed bool, storageKey string) (entities.JobPhoto, error)
	PhotoUploadURL(ctx context.Context, photoID, contentType string) (PhotoUpload, error)
}

// JobDeps groups the collaborators of JobUseCase. Storage and Metrics are
// optional.
type JobDeps struct {
	Jobs       interfaces.IJobRepository
	Templates  interfaces.IWorkflowTemplateRepository
	Vehicles   interfaces.IVehicleRepository
	Customers  interfaces.ICustomerRepository
	Insurers   interfaces.IInsuranceCompanyRepository
	Employees  interfaces.IEmployeeRepository
	Storage    interfaces.IPhotoStorage
	Metrics    interfaces.IWorkflowMetrics
	JobNumbers *JobNumberGenerator
}

type JobUseCase struct {
	deps JobDeps
	log  *zap.Logger
	now  func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(deps JobDeps, log *zap.Logger) *JobUseCase {
	if deps.Metrics == nil {
		deps.Metrics = interfaces.NopWorkflowMetrics{}
	}
	if deps.JobNumbers == nil {
		deps.JobNumbers = NewJobNumberGenerator()
	}
	return &JobUseCase{
		deps: deps,
		log:  logger.OrNop(log),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (job entities.Job, err error) {
	ctx, span := tracing.StartSpan(ctx, "job.create")
	defer func() {
		tracing.SetError(span, err)
		span.End()
	}()

	u.log.Info("[job][usecase] create start",
		zap.String("vehicle_id", in.VehicleID),
		zap.String("customer_id", in.CustomerID),
		zap.String("job_number", in.JobNumber))

	if err := u.validateCreate(&in); err != nil {
		u.log.Info("[job][usecase] create rejected", zap.Error(err))
		return entities.Job{}, err
	}

	now := u.now()
	newJob := interfaces.NewJob{}

	customer, isNew, err := u.resolveCustomer(ctx, in, now)
	if err != nil {
		return entities.Job{}, err
	}
	if isNew {
		newJob.NewCustomer = &customer
	}

	vehicle, isNew, err := u.resolveVehicle(ctx, in, customer.ID, now)
	if err != nil {
		return entities.Job{}, err
	}
	if isNew {
		newJob.NewVehicle = &vehicle
	}

	catalog, err := u.deps.Templates.GetCatalog(ctx)
	if err != nil {
		u.log.Error("[job][usecase] load workflow templates failed", zap.Error(err))
		return entities.Job{}, err
	}
	stages := catalog.StagesOrdered()
	if len(stages) == 0 {
		u.log.Error("[job][usecase] no workflow stages seeded")
		return entities.Job{}, classifyWorkflowError(workflow.ErrNoStages)
	}

	plan, err := workflow.InitializeJobWorkflow(stages, catalog.StepTemplatesByStage(), stages[0].OrderIndex, now)
	if err != nil {
		return entities.Job{}, classifyWorkflowError(err)
	}

	jobID := uuid.NewString()
	job = entities.Job{
		ID:                 jobID,
		JobNumber:          in.JobNumber,
		VehicleID:          vehicle.ID,
		CustomerID:         customer.ID,
		ReceiverID:         in.ReceiverID,
		InsuranceCompanyID: in.InsuranceCompanyID,
		Status:             entities.JobStatus(in.Status),
		PaymentType:        entities.PaymentType(in.PaymentType),
		ExcessFee:          in.ExcessFee,
		StartDate:          in.StartDate,
		EstimatedEndDate:   in.EstimatedEndDate,
		RepairDescription:  in.RepairDescription,
		Notes:              in.Notes,
		CurrentStageIndex:  plan.CurrentStageIndex(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Stages:             plan.JobStages(jobID, uuid.NewString, now),
		Photos:             workflow.InitialPhotos(jobID, catalog.PhotoTypesOrdered(), uuid.NewString),
	}
	if job.JobNumber == "" {
		job.JobNumber = u.deps.JobNumbers.Next()
	}
	if job.Status == "" {
		job.Status = entities.JobStatusClaim
		if s, ok := entities.JobStatusForStage(stages[0].Code); ok {
			job.Status = s
		}
	}
	if job.Status == entities.JobStatusDone {
		job.MarkFinished(now)
	}
	if job.StartDate == nil {
		job.StartDate = &now
	}
	newJob.Job = job

	span.SetAttributes(attribute.String(tracing.JobIDKey, job.ID), attribute.String(tracing.JobStatusKey, string(job.Status)))

	created, err := u.deps.Jobs.Create(ctx, newJob)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			u.log.Info("[job][usecase] create conflict", zap.String("job_number", job.JobNumber), zap.Error(err))
			return entities.Job{}, ErrJobAlreadyExists
		}
		if errors.Is(err, interfaces.ErrTransactionTooLarge) {
			u.log.Error("[job][usecase] workflow too large for one transaction", zap.Int("steps", plan.StepCount()), zap.Error(err))
			return entities.Job{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		u.log.Error("[job][usecase] repository create failed", zap.String("job_id", job.ID), zap.Error(err))
		return entities.Job{}, err
	}

	created.Vehicle = &vehicle
	created.Customer = &customer
	u.deps.Metrics.JobCreated(string(created.Status))
	u.log.Info("[job][usecase] create success",
		zap.String("job_id", created.ID),
		zap.String("job_number", created.JobNumber),
		zap.Int("stages", len(created.Stages)),
		zap.Int("steps", plan.StepCount()),
		zap.Int("photos", len(created.Photos)))
	return created, nil
}

func (u *JobUseCase) validateCreate(in *CreateJobInput) error {
	var err error
	if in.VehicleID, err = parseOptionalID(in.VehicleID, "vehicleId"); err != nil {
		return err
	}
	if in.CustomerID, err = parseOptionalID(in.CustomerID, "customerId"); err != nil {
		return err
	}
	if in.ReceiverID, err = parseOptionalID(in.ReceiverID, "receiverId"); err != nil {
		return err
	}
	if in.InsuranceCompanyID, err = parseOptionalID(in.InsuranceCompanyID, "insuranceCompanyId"); err != nil {
		return err
	}

	if in.VehicleID == "" && (in.Vehicle == nil || normalizeRegistration(in.Vehicle.Registration) == "") {
		return ErrVehicleRefRequired
	}
	if in.CustomerID == "" && (in.Customer == nil ||
		strings.TrimSpace(in.Customer.Name) == "" || strings.TrimSpace(in.Customer.Phone) == "") {
		return ErrCustomerRefRequired
	}

	in.JobNumber = strings.TrimSpace(in.JobNumber)
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	if in.Status != "" && !entities.JobStatus(in.Status).IsValid() {
		return validationf("invalid status %q", in.Status)
	}

	in.PaymentType = strings.TrimSpace(in.PaymentType)
	if in.PaymentType == "" {
		in.PaymentType = string(entities.PaymentTypeCash)
		if in.InsuranceCompanyID != "" {
			in.PaymentType = string(entities.PaymentTypeInsurance)
		}
	}
	if !entities.PaymentType(in.PaymentType).IsValid() {
		return validationf("invalid paymentType %q", in.PaymentType)
	}
	if in.ExcessFee < 0 {
		return validationf("excessFee must not be negative")
	}
	if in.StartDate != nil && in.EstimatedEndDate != nil && in.EstimatedEndDate.Before(*in.StartDate) {
		return validationf("estimatedEndDate is before startDate")
	}
	return nil
}

// resolveCustomer returns the referenced customer. isNew reports a customer
// built from inline data that the caller must create.
func (u *JobUseCase) resolveCustomer(ctx context.Context, in CreateJobInput, now time.Time) (c entities.Customer, isNew bool, err error) {
	if in.CustomerID != "" {
		c, err = u.deps.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return entities.Customer{}, false, err
		}
		if c.ID == "" {
			return entities.Customer{}, false, validationf("customer %s does not exist", in.CustomerID)
		}
		return c, false, nil
	}

	name := strings.TrimSpace(in.Customer.Name)
	phone := strings.TrimSpace(in.Customer.Phone)
	existing, err := u.deps.Customers.GetByNamePhone(ctx, name, phone)
	if err != nil {
		return entities.Customer{}, false, err
	}
	if existing.ID != "" {
		u.log.Debug("[job][usecase] reusing customer", zap.String("customer_id", existing.ID))
		return existing, false, nil
	}
	return entities.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     strings.TrimSpace(in.Customer.Email),
		Address:   strings.TrimSpace(in.Customer.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}, true, nil
}

// resolveVehicle returns the referenced vehicle. A registration match is
// reused as stored, inline fields ignored. isNew reports a vehicle built from
// inline data that the caller must create.
func (u *JobUseCase) resolveVehicle(ctx context.Context, in CreateJobInput, customerID string, now time.Time) (v entities.Vehicle, isNew bool, err error) {
	if in.VehicleID != "" {
		v, err = u.deps.Vehicles.GetByID(ctx, in.VehicleID)
		if err != nil {
			return entities.Vehicle{}, false, err
		}
		if v.ID == "" {
			return entities.Vehicle{}, false, validationf("vehicle %s does not exist", in.VehicleID)
		}
		return v, false, nil
	}

	reg := normalizeRegistration(in.Vehicle.Registration)
	existing, err := u.deps.Vehicles.GetByRegistration(ctx, reg)
	if err != nil {
		return entities.Vehicle{}, false, err
	}
	if existing.ID != "" {
		u.log.Debug("[job][usecase] reusing vehicle", zap.String("vehicle_id", existing.ID), zap.String("registration", reg))
		return existing, false, nil
	}
	return entities.Vehicle{
		ID:            uuid.NewString(),
		Registration:  reg,
		Brand:         strings.TrimSpace(in.Vehicle.Brand),
		Model:         strings.TrimSpace(in.Vehicle.Model),
		Type:          strings.TrimSpace(in.Vehicle.Type),
		Color:         strings.TrimSpace(in.Vehicle.Color),
		Year:          in.Vehicle.Year,
		ChassisNumber: strings.TrimSpace(in.Vehicle.ChassisNumber),
		VINNumber:     strings.TrimSpace(in.Vehicle.VINNumber),
		CustomerID:    customerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, true, nil
}

func (u *JobUseCase) GetJobDetails(ctx context.Context, id string) (job entities.Job, err error) {
	ctx, span := tracing.StartSpan(ctx, "job.get_details", attribute.String(tracing.JobIDKey, id))
	defer func() {
		tracing.SetError(span, err)
		span.End()
	}()

	id, err = parseID(id, "job id")
	if err != nil {
		return entities.Job{}, err
	}

	job, err = u.deps.Jobs.GetDetails(ctx, id)
	if err != nil {
		u.log.Error("[job][usecase] load job failed", zap.String("job_id", id), zap.Error(err))
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	catalog, err := u.deps.Templates.GetCatalog(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	attachTemplates(&job, catalog)

	if err := u.attachParties(ctx, &job); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

// attachTemplates resolves the template of every stage, step and photo and
// orders stages by stage order, steps by step order and photos by type order.
func attachTemplates(job *entities.Job, catalog entities.WorkflowCatalog) {
	for i := range job.Stages {
		js := &job.Stages[i]
		if s, ok := catalog.Stage(js.StageID); ok {
			js.Stage = &s
			js.StageOrderIndex = s.OrderIndex
		}
		for k := range js.Steps {
			step := &js.Steps[k]
			if st, ok := catalog.StepTemplate(step.StepTemplateID); ok {
				step.StepTemplate = &st
				step.StepOrderIndex = st.OrderIndex
			}
		}
		sortSteps(js.Steps)
	}
	sortStages(job.Stages)

	for i := range job.Photos {
		p := &job.Photos[i]
		if pt, ok := catalog.PhotoType(p.PhotoTypeID); ok {
			p.PhotoType = &pt
			p.OrderIndex = pt.OrderIndex
		}
	}
	sortPhotos(job.Photos)
}

func (u *JobUseCase) attachParties(ctx context.Context, job *entities.Job) error {
	if job.VehicleID != "" {
		v, err := u.deps.Vehicles.GetByID(ctx, job.VehicleID)
		if err != nil {
			return err
		}
		if v.ID != "" {
			job.Vehicle = &v
		}
	}
	if job.CustomerID != "" {
		c, err := u.deps.Customers.GetByID(ctx, job.CustomerID)
		if err != nil {
			return err
		}
		if c.ID != "" {
			job.Customer = &c
		}
	}
	if job.InsuranceCompanyID != "" && u.deps.Insurers != nil {
		ic, err := u.deps.Insurers.GetByID(ctx, job.InsuranceCompanyID)
		if err != nil {
			return err
		}
		if ic.ID != "" {
			job.InsuranceCompany = &ic
		}
	}
	return nil
}

func (u *JobUseCase) ListJobs(ctx context.Context, in ListJobsInput) (list JobList, err error) {
	ctx, span := tracing.StartSpan(ctx, "job.list")
	defer func() {
		tracing.SetError(span, err)
		span.End()
	}()

	q, err := buildJobQuery(in)
	if err != nil {
		return JobList{}, err
	}

	jobs, err := u.deps.Jobs.List(ctx, interfaces.JobScan{
		InsuranceCompanyID: q.Filters.InsuranceCompanyID,
		StartDayFrom:       q.Filters.StartDateFrom,
		StartDayTo:         q.Filters.StartDateTo,
	})
	if err != nil {
		u.log.Error("[job][usecase] list scan failed", zap.Error(err))
		return JobList{}, err
	}

	vehicleIDs := make([]string, 0, len(jobs))
	customerIDs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		vehicleIDs = append(vehicleIDs, j.VehicleID)
		customerIDs = append(customerIDs, j.CustomerID)
	}
	vehicles, err := u.deps.Vehicles.BatchGet(ctx, uniqueStrings(vehicleIDs))
	if err != nil {
		return JobList{}, err
	}
	customers, err := u.deps.Customers.BatchGet(ctx, uniqueStrings(customerIDs))
	if err != nil {
		return JobList{}, err
	}

	rows := make([]jobquery.Row, 0, len(jobs))
	for _, j := range jobs {
		row := jobquery.Row{Job: j}
		if v, ok := vehicles[j.VehicleID]; ok {
			row.Vehicle = &v
		}
		if c, ok := customers[j.CustomerID]; ok {
			row.Customer = &c
		}
		rows = append(rows, row)
	}

	res := jobquery.Run(rows, q)
	data := make([]entities.Job, 0, len(res.Data))
	for _, row := range res.Data {
		j := row.Job
		j.Vehicle = row.Vehicle
		j.Customer = row.Customer
		data = append(data, j)
	}

	span.SetAttributes(attribute.Int("oficina.jobs.total", res.Total))
	u.log.Debug("[job][usecase] list done", zap.Int("scanned", len(jobs)), zap.Int("total", res.Total))
	return JobList{
		Page: api.Page[entities.Job]{
			Data:       data,
			Total:      res.Total,
			Page:       res.Page.Page,
			Limit:      res.Limit,
			TotalPages: res.TotalPages,
		},
		StatusCounts: res.StatusCounts,
	}, nil
}

func buildJobQuery(in ListJobsInput) (jobquery.Query, error) {
	f := jobquery.Filters{
		Registration:       in.Registration,
		CustomerName:       in.CustomerName,
		ChassisNumber:      in.ChassisNumber,
		VINNumber:          in.VINNumber,
		JobNumber:          in.JobNumber,
		InsuranceCompanyID: in.InsuranceCompanyID,
		Status:             entities.JobStatus(in.Status),
		Search:             in.Search,
	}.Normalize()

	if f.Status != "" && !f.Status.IsValid() {
		return jobquery.Query{}, validationf("invalid status %q", in.Status)
	}
	if f.InsuranceCompanyID != "" {
		id, err := parseID(f.InsuranceCompanyID, "insuranceCompanyId")
		if err != nil {
			return jobquery.Query{}, err
		}
		f.InsuranceCompanyID = id
	}
	for _, bound := range []struct {
		raw  string
		dst  **time.Time
		name string
	}{
		{in.StartDateFrom, &f.StartDateFrom, "startDateFrom"},
		{in.StartDateTo, &f.StartDateTo, "startDateTo"},
	} {
		if strings.TrimSpace(bound.raw) == "" {
			continue
		}
		d, err := jobquery.ParseDate(bound.raw)
		if err != nil {
			return jobquery.Query{}, validationf("invalid %s, expected YYYY-MM-DD", bound.name)
		}
		*bound.dst = &d
	}

	return jobquery.Query{
		Filters:   f,
		SortBy:    jobquery.ParseSortField(in.SortBy),
		SortOrder: jobquery.ParseSortOrder(in.SortOrder),
		Page:      in.Page.Normalize(),
	}, nil
}

func (u *JobUseCase) UpdateStepStatus(ctx context.Context, stepID, status, employeeID string) (step entities.JobStep, err error) {
	ctx, span := tracing.StartSpan(ctx, "job.update_step", attribute.String(tracing.StepIDKey, stepID))
	defer func() {
		tracing.SetError(span, err)
		span.End()
	}()

	stepID, err = parseID(stepID, "step id")
	if err != nil {
		return entities.JobStep{}, err
	}
	target, err := workflow.ParseStepStatus(strings.TrimSpace(status))
	if err != nil {
		return entities.JobStep{}, classifyWorkflowError(err)
	}
	employeeID, err = parseOptionalID(employeeID, "employeeId")
	if err != nil {
		return entities.JobStep{}, err
	}
	if employeeID != "" {
		emp, err := u.deps.Employees.GetByID(ctx, employeeID)
		if err != nil {
			return entities.JobStep{}, err
		}
		if emp.ID == "" {
			return entities.JobStep{}, validationf("employee %s does not exist", employeeID)
		}
	}

	current, err := u.deps.Jobs.GetStep(ctx, stepID)
	if err != nil {
		u.log.Error("[job][usecase] load step failed", zap.String("step_id", stepID), zap.Error(err))
		return entities.JobStep{}, err
	}
	if current.ID == "" {
		return entities.JobStep{}, ErrStepNotFound
	}

	catalog, err := u.deps.Templates.GetCatalog(ctx)
	if err != nil {
		return entities.JobStep{}, err
	}
	tmpl, ok := catalog.StepTemplate(current.StepTemplateID)
	if !ok {
		u.log.Error("[job][usecase] step template missing", zap.String("step_template_id", current.StepTemplateID))
		return entities.JobStep{}, fmt.Errorf("%w: step template %s not found", ErrConfiguration, current.StepTemplateID)
	}

	changed, err := workflow.TransitionStep(current, tmpl, target, employeeID, u.now())
	if err != nil {
		return entities.JobStep{}, classifyWorkflowError(err)
	}

	updated, err := u.deps.Jobs.UpdateStep(ctx, changed)
	if err != nil {
		u.log.Error("[job][usecase] update step failed", zap.String("step_id", stepID), zap.Error(err))
		return entities.JobStep{}, err
	}
	if updated.ID == "" {
		return entities.JobStep{}, ErrStepNotFound
	}
	updated.StepTemplate = &tmpl
	u.deps.Metrics.StepTransitioned(string(current.Status), string(updated.Status))
	u.log.Info("[job][usecase] step updated",
		zap.String("step_id", stepID),
		zap.String("job_id", updated.JobID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

func (u *JobUseCase) AdvanceStage(ctx context.Context, jobID string) (job entities.Job, err error) {
	ctx, span := tracing.StartSpan(ctx, "job.advance_stage", attribute.String(tracing.JobIDKey, jobID))
	defer func() {
		tracing.SetError(span, err)
		span.End()
	}()

	job, err = u.GetJobDetails(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	adv, err := workflow.AdvanceStage(job, u.now())
	if err != nil {
		u.log.Info("[job][usecase] advance rejected", zap.String("job_id", job.ID), zap.Error(err))
		return entities.Job{}, classifyWorkflowError(err)
	}

	if err := u.deps.Jobs.SaveStageAdvance(ctx, job.ID, job.CurrentStageIndex, adv); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Job{}, fmt.Errorf("%w: job was advanced concurrently", ErrConflict)
		}
		u.log.Error("[job][usecase] save advance failed", zap.String("job_id", job.ID), zap.Error(err))
		return entities.Job{}, err
	}

	code := adv.CompletedStage.StageID
	if adv.CompletedStage.Stage != nil {
		code = adv.CompletedStage.Stage.Code
	}
	u.deps.Metrics.StageAdvanced(code, adv.Finished)
	u.log.Info("[job][usecase] stage advanced",
		zap.String("job_id", job.ID),
		zap.String("completed_stage", code),
		zap.String("status", string(adv.Status)),
		zap.Bool("finished", adv.Finished))

	return u.GetJobDetails(ctx, job.ID)
}

func (u *JobUseCase) UpdatePhoto(ctx context.Context, photoID string, completed bool, storageKey string) (entities.JobPhoto, error) {
	photoID, err := parseID(photoID, "photo id")
	if err != nil {
		return entities.JobPhoto{}, err
	}

	photo, err := u.deps.Jobs.GetPhoto(ctx, photoID)
	if err != nil {
		return entities.JobPhoto{}, err
	}
	if photo.ID == "" {
		return entities.JobPhoto{}, ErrPhotoNotFound
	}

	photo.IsCompleted = completed
	if completed {
		now := u.now()
		photo.CompletedAt = &now
	} else {
		photo.CompletedAt = nil
	}
	if key := strings.TrimSpace(storageKey); key != "" {
		if !strings.HasPrefix(key, photoKeyPrefix(photo)) {
			return entities.JobPhoto{}, validationf("storageKey does not belong to photo %s", photo.ID)
		}
		photo.StorageKey = key
	}

	updated, err := u.deps.Jobs.UpdatePhoto(ctx, photo)
	if err != nil {
		u.log.Error("[job][usecase] update photo failed", zap.String("photo_id", photoID), zap.Error(err))
		return entities.JobPhoto{}, err
	}
	if updated.ID == "" {
		return entities.JobPhoto{}, ErrPhotoNotFound
	}
	u.log.Info("[job][usecase] photo updated", zap.String("photo_id", photoID), zap.Bool("completed", completed))
	return updated, nil
}

func (u *JobUseCase) PhotoUploadURL(ctx context.Context, photoID, contentType string) (PhotoUpload, error) {
	if u.deps.Storage == nil {
		return PhotoUpload{}, ErrPhotoStorageDisabled
	}
	photoID, err := parseID(photoID, "photo id")
	if err != nil {
		return PhotoUpload{}, err
	}
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if !strings.HasPrefix(contentType, "image/") {
		return PhotoUpload{}, validationf("contentType must be an image type")
	}

	photo, err := u.deps.Jobs.GetPhoto(ctx, photoID)
	if err != nil {
		return PhotoUpload{}, err
	}
	if photo.ID == "" {
		return PhotoUpload{}, ErrPhotoNotFound
	}

	key := photoKeyPrefix(photo) + uuid.NewString()
	url, expiresAt, err := u.deps.Storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		u.log.Error("[job][usecase] presign failed", zap.String("photo_id", photoID), zap.Error(err))
		return PhotoUpload{}, err
	}
	return PhotoUpload{URL: url, StorageKey: key, ExpiresAt: expiresAt}, nil
}

func photoKeyPrefix(p entities.JobPhoto) string {
	return fmt.Sprintf("jobs/%s/photos/%s/", p.JobID, p.ID)
}
