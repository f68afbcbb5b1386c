package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

// IWorkflowTemplateRepository is the read side of the workflow templates
// plus the bootstrap write. An unseeded store returns empty slices.
type IWorkflowTemplateRepository interface {
	ListStagesOrdered(ctx context.Context) ([]entities.Stage, error)
	ListStepTemplates(ctx context.Context, stageID string) ([]entities.StepTemplate, error)
	ListPhotoTypes(ctx context.Context) ([]entities.PhotoType, error)
	GetCatalog(ctx context.Context) (entities.WorkflowCatalog, error)
	SaveCatalog(ctx context.Context, catalog entities.WorkflowCatalog) error
}
