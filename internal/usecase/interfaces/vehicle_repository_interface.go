package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

// IVehicleRepository persists vehicles. Registration is unique.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error)
	BatchGet(ctx context.Context, ids []string) (map[string]entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IVehicleCatalogRepository serves the brand / model / type reference lists.
type IVehicleCatalogRepository interface {
	ListBrands(ctx context.Context) ([]entities.VehicleBrand, error)
	ListModels(ctx context.Context, brandID string) ([]entities.VehicleModel, error)
	ListTypes(ctx context.Context) ([]entities.VehicleType, error)
	SaveCatalog(ctx context.Context, catalog entities.VehicleCatalog) error
}
