package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

// IEmployeeRepository persists employees. Username is unique.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	GetByUsername(ctx context.Context, username string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
