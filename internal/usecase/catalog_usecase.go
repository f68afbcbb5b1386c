package usecase

import (
	"context"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

// StageWithSteps is a stage and its ordered step templates.
type StageWithSteps struct {
	entities.Stage
	StepTemplates []entities.StepTemplate
}

// ICatalogUseCase serves the read-only reference data: workflow templates
// and the vehicle catalog.
type ICatalogUseCase interface {
	ListStages(ctx context.Context) ([]StageWithSteps, error)
	ListPhotoTypes(ctx context.Context) ([]entities.PhotoType, error)
	ListBrands(ctx context.Context) ([]entities.VehicleBrand, error)
	ListModels(ctx context.Context, brandID string) ([]entities.VehicleModel, error)
	ListTypes(ctx context.Context) ([]entities.VehicleType, error)
}

type CatalogUseCase struct {
	templates interfaces.IWorkflowTemplateRepository
	vehicles  interfaces.IVehicleCatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(templates interfaces.IWorkflowTemplateRepository, vehicles interfaces.IVehicleCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{templates: templates, vehicles: vehicles}
}

func (u *CatalogUseCase) ListStages(ctx context.Context) ([]StageWithSteps, error) {
	stages, err := u.templates.ListStagesOrdered(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StageWithSteps, 0, len(stages))
	for _, s := range stages {
		steps, err := u.templates.ListStepTemplates(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, StageWithSteps{Stage: s, StepTemplates: steps})
	}
	return out, nil
}

func (u *CatalogUseCase) ListPhotoTypes(ctx context.Context) ([]entities.PhotoType, error) {
	return u.templates.ListPhotoTypes(ctx)
}

func (u *CatalogUseCase) ListBrands(ctx context.Context) ([]entities.VehicleBrand, error) {
	return u.vehicles.ListBrands(ctx)
}

func (u *CatalogUseCase) ListModels(ctx context.Context, brandID string) ([]entities.VehicleModel, error) {
	brandID, err := parseID(brandID, "brand id")
	if err != nil {
		return nil, err
	}
	return u.vehicles.ListModels(ctx, brandID)
}

func (u *CatalogUseCase) ListTypes(ctx context.Context) ([]entities.VehicleType, error) {
	return u.vehicles.ListTypes(ctx)
}
