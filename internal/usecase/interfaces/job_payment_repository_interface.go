package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

// IJobPaymentRepository abstracts DynamoDB persistence for JobPayment.
type IJobPaymentRepository interface {
	Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error)
	GetByID(ctx context.Context, id string) (entities.JobPayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.JobPayment, error)
}
