package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/api"
	"oficina_jobs/pkg/logger"
)

var (
	ErrInsuranceCompanyNotFound = fmt.Errorf("insurance company %w", ErrNotFound)
	ErrInsuranceCompanyInUse    = fmt.Errorf("%w: insurance company is referenced by a job", ErrConflict)
)

type InsuranceCompanyInput struct {
	Name        string
	Phone       string
	Email       string
	ContactName string
}

type IInsuranceCompanyUseCase interface {
	Create(ctx context.Context, in InsuranceCompanyInput) (entities.InsuranceCompany, error)
	GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error)
	List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.InsuranceCompany], error)
	Update(ctx context.Context, id string, in InsuranceCompanyInput) (entities.InsuranceCompany, error)
	Delete(ctx context.Context, id string) error
}

type InsuranceCompanyUseCase struct {
	repo interfaces.IInsuranceCompanyRepository
	jobs interfaces.IJobRepository
	log  *zap.Logger
}

var _ IInsuranceCompanyUseCase = (*InsuranceCompanyUseCase)(nil)

func NewInsuranceCompanyUseCase(repo interfaces.IInsuranceCompanyRepository, jobs interfaces.IJobRepository, log *zap.Logger) *InsuranceCompanyUseCase {
	return &InsuranceCompanyUseCase{repo: repo, jobs: jobs, log: logger.OrNop(log)}
}

func (in InsuranceCompanyInput) normalize() (InsuranceCompanyInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.ContactName = strings.TrimSpace(in.ContactName)
	if in.Name == "" {
		return in, validationf("insurance company name is required")
	}
	return in, nil
}

func (u *InsuranceCompanyUseCase) Create(ctx context.Context, in InsuranceCompanyInput) (entities.InsuranceCompany, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.InsuranceCompany{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		ContactName: in.ContactName,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		u.log.Error("[insurance][usecase] create failed", zap.Error(err))
		return entities.InsuranceCompany{}, err
	}
	return created, nil
}

func (u *InsuranceCompanyUseCase) GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error) {
	id, err := parseID(id, "insurance company id")
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	ic, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	if ic.ID == "" {
		return entities.InsuranceCompany{}, ErrInsuranceCompanyNotFound
	}
	return ic, nil
}

func (u *InsuranceCompanyUseCase) List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.InsuranceCompany], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return api.Page[entities.InsuranceCompany]{}, err
	}
	sortByName(all, func(ic entities.InsuranceCompany) string { return ic.Name })
	return searchPage(all, search, func(ic entities.InsuranceCompany) []string {
		return []string{ic.Name, ic.ContactName, ic.Email}
	}, page), nil
}

func (u *InsuranceCompanyUseCase) Update(ctx context.Context, id string, in InsuranceCompanyInput) (entities.InsuranceCompany, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	current.Name = in.Name
	current.Phone = in.Phone
	current.Email = in.Email
	current.ContactName = in.ContactName
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.InsuranceCompany{}, err
	}
	if updated.ID == "" {
		return entities.InsuranceCompany{}, ErrInsuranceCompanyNotFound
	}
	return updated, nil
}

func (u *InsuranceCompanyUseCase) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "insurance company id")
	if err != nil {
		return err
	}
	inUse, err := u.jobs.IsReferenced(ctx, interfaces.JobReference{InsuranceCompanyID: id})
	if err != nil {
		return err
	}
	if inUse {
		return ErrInsuranceCompanyInUse
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInsuranceCompanyNotFound
	}
	return nil
}
