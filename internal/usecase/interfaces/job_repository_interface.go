package interfaces

import (
	"context"
	"time"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/workflow"
)

// NewJob is everything written by one job creation. NewVehicle and
// NewCustomer are set only when the references were not resolved to
// existing rows and must be created in the same transaction.
type NewJob struct {
	Job         entities.Job
	NewVehicle  *entities.Vehicle
	NewCustomer *entities.Customer
}

// JobScan holds the listing filters the store can evaluate itself. Every
// scanned job still goes through the query engine.
type JobScan struct {
	InsuranceCompanyID string
	StartDayFrom       *time.Time
	StartDayTo         *time.Time
}

// JobReference selects jobs pointing at a master-data row.
type JobReference struct {
	VehicleID          string
	CustomerID         string
	InsuranceCompanyID string
	ReceiverID         string
}

// IJobRepository persists the job aggregate: the job row and the stages,
// steps and photos it owns.
//
// Not-found lookups return the zero value with a nil error.
type IJobRepository interface {
	// Create writes the job, its whole workflow graph and any new vehicle
	// or customer atomically. Duplicate job numbers, registrations or
	// customers fail with ErrConflict.
	Create(ctx context.Context, in NewJob) (entities.Job, error)
	GetDetails(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, scan JobScan) ([]entities.Job, error)

	GetStep(ctx context.Context, stepID string) (entities.JobStep, error)
	UpdateStep(ctx context.Context, step entities.JobStep) (entities.JobStep, error)

	GetPhoto(ctx context.Context, photoID string) (entities.JobPhoto, error)
	UpdatePhoto(ctx context.Context, photo entities.JobPhoto) (entities.JobPhoto, error)

	// SaveStageAdvance persists an advance computed from a job whose
	// current stage index was fromIndex. A concurrent change of that index
	// fails with ErrConflict.
	SaveStageAdvance(ctx context.Context, jobID string, fromIndex int, adv workflow.StageAdvance) error

	IsReferenced(ctx context.Context, ref JobReference) (bool, error)
}
