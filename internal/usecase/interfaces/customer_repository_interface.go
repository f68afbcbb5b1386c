package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

// ICustomerRepository persists customers. (Name, Phone) is unique.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByNamePhone(ctx context.Context, name, phone string) (entities.Customer, error)
	BatchGet(ctx context.Context, ids []string) (map[string]entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}
