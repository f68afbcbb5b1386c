package interfaces

import (
	"context"

	"oficina_jobs/internal/domain/entities"
)

type IInsuranceCompanyRepository interface {
	Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error)
	GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error)
	BatchGet(ctx context.Context, ids []string) (map[string]entities.InsuranceCompany, error)
	List(ctx context.Context) ([]entities.InsuranceCompany, error)
	Update(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error)
	Delete(ctx context.Context, id string) (bool, error)
}
