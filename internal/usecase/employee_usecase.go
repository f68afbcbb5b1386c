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

const minPasswordLength = 8

var (
	ErrEmployeeNotFound      = fmt.Errorf("employee %w", ErrNotFound)
	ErrEmployeeAlreadyExists = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmployeeInUse         = fmt.Errorf("%w: employee is referenced by a job", ErrConflict)
)

// EmployeeInput carries employee fields. On update an empty Password keeps
// the current one and a nil IsActive keeps the current flag.
type EmployeeInput struct {
	Name     string
	Username string
	Password string
	Role     string
	Phone    string
	Email    string
	IsActive *bool
}

type IEmployeeUseCase interface {
	Create(ctx context.Context, in EmployeeInput) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Employee], error)
	Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo   interfaces.IEmployeeRepository
	jobs   interfaces.IJobRepository
	hasher interfaces.IPasswordHasher
	log    *zap.Logger
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository, jobs interfaces.IJobRepository, hasher interfaces.IPasswordHasher, log *zap.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, jobs: jobs, hasher: hasher, log: logger.OrNop(log)}
}

func (in EmployeeInput) normalize(requirePassword bool) (EmployeeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Username == "" {
		return in, validationf("employee name and username are required")
	}
	if in.Role == "" {
		in.Role = string(entities.EmployeeRoleTechnician)
	}
	if !entities.EmployeeRole(in.Role).IsValid() {
		return in, validationf("invalid role %q", in.Role)
	}
	if (requirePassword || in.Password != "") && len(in.Password) < minPasswordLength {
		return in, validationf("password must have at least %d characters", minPasswordLength)
	}
	return in, nil
}

func (u *EmployeeUseCase) Create(ctx context.Context, in EmployeeInput) (entities.Employee, error) {
	in, err := in.normalize(true)
	if err != nil {
		return entities.Employee{}, err
	}
	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.Employee{}, err
	}

	now := time.Now().UTC()
	e := entities.Employee{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         entities.EmployeeRole(in.Role),
		Phone:        in.Phone,
		Email:        in.Email,
		IsActive:     in.IsActive == nil || *in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Employee{}, ErrEmployeeAlreadyExists
		}
		u.log.Error("[employee][usecase] create failed", zap.String("username", e.Username), zap.Error(err))
		return entities.Employee{}, err
	}
	u.log.Info("[employee][usecase] created", zap.String("employee_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id, err := parseID(id, "employee id")
	if err != nil {
		return entities.Employee{}, err
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context, search string, page api.PageRequest) (api.Page[entities.Employee], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return api.Page[entities.Employee]{}, err
	}
	sortByName(all, func(e entities.Employee) string { return e.Name })
	return searchPage(all, search, func(e entities.Employee) []string {
		return []string{e.Name, e.Username, e.Email}
	}, page), nil
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, in EmployeeInput) (entities.Employee, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	in, err = in.normalize(false)
	if err != nil {
		return entities.Employee{}, err
	}
	current.Name = in.Name
	current.Username = in.Username
	current.Role = entities.EmployeeRole(in.Role)
	current.Phone = in.Phone
	current.Email = in.Email
	if in.IsActive != nil {
		current.IsActive = *in.IsActive
	}
	if in.Password != "" {
		if current.PasswordHash, err = u.hasher.Hash(in.Password); err != nil {
			return entities.Employee{}, err
		}
	}
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Employee{}, ErrEmployeeAlreadyExists
		}
		return entities.Employee{}, err
	}
	if updated.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return updated, nil
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "employee id")
	if err != nil {
		return err
	}
	inUse, err := u.jobs.IsReferenced(ctx, interfaces.JobReference{ReceiverID: id})
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmployeeInUse
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEmployeeNotFound
	}
	return nil
}
