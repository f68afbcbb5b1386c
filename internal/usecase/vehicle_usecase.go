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
	ErrVehicleNotFound      = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrVehicleAlreadyExists = fmt.Errorf("%w: vehicle registration already exists", ErrConflict)
	ErrVehicleInUse         = fmt.Errorf("%w: vehicle is referenced by a job", ErrConflict)
)

type IVehicleUseCase interface {
	Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Vehicle], error)
	Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	jobs      interfaces.IJobRepository
	log       *zap.Logger
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository, jobs interfaces.IJobRepository, log *zap.Logger) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers, jobs: jobs, log: logger.OrNop(log)}
}

func (u *VehicleUseCase) normalize(ctx context.Context, in VehicleInput) (VehicleInput, error) {
	in.Registration = normalizeRegistration(in.Registration)
	if in.Registration == "" {
		return in, validationf("vehicle registration is required")
	}
	if in.Year < 0 || in.Year > time.Now().Year()+1 {
		return in, validationf("invalid vehicle year %d", in.Year)
	}
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Type = strings.TrimSpace(in.Type)
	in.Color = strings.TrimSpace(in.Color)
	in.ChassisNumber = strings.TrimSpace(in.ChassisNumber)
	in.VINNumber = strings.TrimSpace(in.VINNumber)

	var err error
	if in.CustomerID, err = parseOptionalID(in.CustomerID, "customerId"); err != nil {
		return in, err
	}
	if in.CustomerID != "" {
		c, err := u.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return in, err
		}
		if c.ID == "" {
			return in, validationf("customer %s does not exist", in.CustomerID)
		}
	}
	return in, nil
}

func (u *VehicleUseCase) Create(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	in, err := u.normalize(ctx, in)
	if err != nil {
		return entities.Vehicle{}, err
	}
	now := time.Now().UTC()
	v := entities.Vehicle{ID: uuid.NewString(), CreatedAt: now}
	applyVehicleInput(&v, in, now)

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Vehicle{}, ErrVehicleAlreadyExists
		}
		u.log.Error("[vehicle][usecase] create failed", zap.String("registration", v.Registration), zap.Error(err))
		return entities.Vehicle{}, err
	}
	u.log.Info("[vehicle][usecase] created", zap.String("vehicle_id", created.ID), zap.String("registration", created.Registration))
	return created, nil
}

func applyVehicleInput(v *entities.Vehicle, in VehicleInput, now time.Time) {
	v.Registration = in.Registration
	v.Brand = in.Brand
	v.Model = in.Model
	v.Type = in.Type
	v.Color = in.Color
	v.Year = in.Year
	v.ChassisNumber = in.ChassisNumber
	v.VINNumber = in.VINNumber
	v.CustomerID = in.CustomerID
	v.UpdatedAt = now
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id, err := parseID(id, "vehicle id")
	if err != nil {
		return entities.Vehicle{}, err
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Vehicle], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return api.Page[entities.Vehicle]{}, err
	}
	sortByName(all, func(v entities.Vehicle) string { return v.Registration })
	return searchPage(all, search, func(v entities.Vehicle) []string {
		return []string{v.Registration, v.Brand, v.Model, v.ChassisNumber, v.VINNumber}
	}, page), nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	in, err = u.normalize(ctx, in)
	if err != nil {
		return entities.Vehicle{}, err
	}
	applyVehicleInput(&current, in, time.Now().UTC())

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Vehicle{}, ErrVehicleAlreadyExists
		}
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "vehicle id")
	if err != nil {
		return err
	}
	inUse, err := u.jobs.IsReferenced(ctx, interfaces.JobReference{VehicleID: id})
	if err != nil {
		return err
	}
	if inUse {
		return ErrVehicleInUse
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	u.log.Info("[vehicle][usecase] deleted", zap.String("vehicle_id", id))
	return nil
}
