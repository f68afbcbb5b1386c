package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

type AdminAccount struct {
	Name     string
	Username string
	Password string
}

type employeeCreator interface {
	Create(ctx context.Context, in usecase.EmployeeInput) (entities.Employee, error)
}

// Runner writes the seed into storage. Every step is idempotent.
type Runner struct {
	EnsureTables func(ctx context.Context) error
	Templates    interfaces.IWorkflowTemplateRepository
	Vehicles     interfaces.IVehicleCatalogRepository
	Employees    employeeCreator
	Log          *zap.Logger
}

// Run creates the tables, saves both catalogs and, when admin is set,
// creates the admin employee. An admin that already exists is not an error.
func (r Runner) Run(ctx context.Context, seed Seed, admin *AdminAccount) error {
	log := logger.OrNop(r.Log)

	if r.EnsureTables != nil {
		if err := r.EnsureTables(ctx); err != nil {
			return fmt.Errorf("ensure tables: %w", err)
		}
	}

	wf := seed.WorkflowCatalog()
	if err := r.Templates.SaveCatalog(ctx, wf); err != nil {
		return fmt.Errorf("save workflow catalog: %w", err)
	}
	log.Info("[bootstrap][seed] workflow catalog saved",
		zap.Int("stages", len(wf.Stages)),
		zap.Int("steps", len(wf.StepTemplates)),
		zap.Int("photo_types", len(wf.PhotoTypes)))

	vc := seed.VehicleCatalog()
	if err := r.Vehicles.SaveCatalog(ctx, vc); err != nil {
		return fmt.Errorf("save vehicle catalog: %w", err)
	}
	log.Info("[bootstrap][seed] vehicle catalog saved",
		zap.Int("brands", len(vc.Brands)),
		zap.Int("models", len(vc.Models)),
		zap.Int("types", len(vc.Types)))

	if admin == nil || r.Employees == nil {
		return nil
	}
	name := admin.Name
	if name == "" {
		name = admin.Username
	}
	_, err := r.Employees.Create(ctx, usecase.EmployeeInput{
		Name:     name,
		Username: admin.Username,
		Password: admin.Password,
		Role:     string(entities.EmployeeRoleAdmin),
	})
	switch {
	case err == nil:
		log.Info("[bootstrap][admin] admin created", zap.String("username", admin.Username))
	case errors.Is(err, usecase.ErrEmployeeAlreadyExists):
		log.Info("[bootstrap][admin] admin already exists", zap.String("username", admin.Username))
	default:
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
