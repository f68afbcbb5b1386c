package usecase

import (
	"context"
	"errors"
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
	ErrCustomerNotFound      = fmt.Errorf("customer %w", ErrNotFound)
	ErrCustomerAlreadyExists = fmt.Errorf("%w: customer with this name and phone already exists", ErrConflict)
	ErrCustomerInUse         = fmt.Errorf("%w: customer is referenced by a job", ErrConflict)
)

type ICustomerUseCase interface {
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Customer], error)
	Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	jobs interfaces.IJobRepository
	log  *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, jobs interfaces.IJobRepository, log *zap.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, jobs: jobs, log: logger.OrNop(log)}
}

func (in CustomerInput) normalize() (CustomerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" || in.Phone == "" {
		return in, validationf("customer name and phone are required")
	}
	return in, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.Customer{}, err
	}
	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Customer{}, ErrCustomerAlreadyExists
		}
		u.log.Error("[customer][usecase] create failed", zap.Error(err))
		return entities.Customer{}, err
	}
	u.log.Info("[customer][usecase] created", zap.String("customer_id", created.ID))
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := parseID(id, "customer id")
	if err != nil {
		return entities.Customer{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Customer], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return api.Page[entities.Customer]{}, err
	}
	sortByName(all, func(c entities.Customer) string { return c.Name })
	return searchPage(all, search, func(c entities.Customer) []string {
		return []string{c.Name, c.Phone, c.Email}
	}, page), nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return entities.Customer{}, err
	}
	current.Name = in.Name
	current.Phone = in.Phone
	current.Email = in.Email
	current.Address = in.Address
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Customer{}, ErrCustomerAlreadyExists
		}
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "customer id")
	if err != nil {
		return err
	}
	inUse, err := u.jobs.IsReferenced(ctx, interfaces.JobReference{CustomerID: id})
	if err != nil {
		return err
	}
	if inUse {
		return ErrCustomerInUse
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	u.log.Info("[customer][usecase] deleted", zap.String("customer_id", id))
	return nil
}
