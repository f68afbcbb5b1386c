package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

const catalogCacheKey = "oficina:workflow:catalog"

// CachedWorkflowTemplateRepository is a read-through cache over a template
// store. Templates are seeded once, so the whole catalog is cached as one
// value and dropped on SaveCatalog. Cache failures degrade to the store.
type CachedWorkflowTemplateRepository struct {
	next  interfaces.IWorkflowTemplateRepository
	cache interfaces.ICache
	ttl   time.Duration
	log   *zap.Logger
}

var _ interfaces.IWorkflowTemplateRepository = (*CachedWorkflowTemplateRepository)(nil)

func NewCachedWorkflowTemplateRepository(next interfaces.IWorkflowTemplateRepository, cache interfaces.ICache, ttl time.Duration, log *zap.Logger) *CachedWorkflowTemplateRepository {
	return &CachedWorkflowTemplateRepository{next: next, cache: cache, ttl: ttl, log: logger.OrNop(log)}
}

func (r *CachedWorkflowTemplateRepository) GetCatalog(ctx context.Context) (entities.WorkflowCatalog, error) {
	raw, err := r.cache.Get(ctx, catalogCacheKey)
	switch {
	case err == nil:
		var catalog entities.WorkflowCatalog
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return catalog, nil
		}
		r.log.Warn("[workflow][cache] corrupt catalog entry", zap.Error(err))
	case errors.Is(err, interfaces.ErrCacheMiss):
		r.log.Debug("[workflow][cache] miss")
	default:
		r.log.Warn("[workflow][cache] get failed", zap.Error(err))
	}

	catalog, err := r.next.GetCatalog(ctx)
	if err != nil {
		return entities.WorkflowCatalog{}, err
	}
	// An unseeded store is not cached so a later bootstrap shows up at once.
	if len(catalog.Stages) == 0 {
		return catalog, nil
	}
	if raw, err := json.Marshal(catalog); err == nil {
		if err := r.cache.Set(ctx, catalogCacheKey, raw, r.ttl); err != nil {
			r.log.Warn("[workflow][cache] set failed", zap.Error(err))
		}
	}
	return catalog, nil
}

func (r *CachedWorkflowTemplateRepository) ListStagesOrdered(ctx context.Context) ([]entities.Stage, error) {
	catalog, err := r.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.StagesOrdered(), nil
}

func (r *CachedWorkflowTemplateRepository) ListStepTemplates(ctx context.Context, stageID string) ([]entities.StepTemplate, error) {
	catalog, err := r.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.StepTemplatesFor(stageID), nil
}

func (r *CachedWorkflowTemplateRepository) ListPhotoTypes(ctx context.Context) ([]entities.PhotoType, error) {
	catalog, err := r.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.PhotoTypesOrdered(), nil
}

func (r *CachedWorkflowTemplateRepository) SaveCatalog(ctx context.Context, catalog entities.WorkflowCatalog) error {
	if err := r.next.SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	if err := r.cache.Del(ctx, catalogCacheKey); err != nil {
		r.log.Warn("[workflow][cache] invalidate failed", zap.Error(err))
	}
	return nil
}
