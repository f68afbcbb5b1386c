package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	mock_interfaces "oficina_jobs/internal/usecase/interfaces/mocks"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setHits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setHits++
	c.data[key] = value
	return nil
}

func (c *memoryCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func seededCatalog() entities.WorkflowCatalog {
	return entities.WorkflowCatalog{
		Stages: []entities.Stage{
			{ID: "s2", Code: "repair", OrderIndex: 2},
			{ID: "s1", Code: "claim", OrderIndex: 1},
		},
		StepTemplates: []entities.StepTemplate{
			{ID: "t2", StageID: "s1", Name: "Quote", OrderIndex: 2},
			{ID: "t1", StageID: "s1", Name: "Inspect", OrderIndex: 1},
		},
		PhotoTypes: []entities.PhotoType{{ID: "p1", Code: "before_repair", OrderIndex: 1}},
	}
}

func TestCachedWorkflowTemplateRepository_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIWorkflowTemplateRepository(ctrl)
	cache := newMemoryCache()
	repo := NewCachedWorkflowTemplateRepository(next, cache, time.Minute, nil)

	next.EXPECT().GetCatalog(gomock.Any()).Return(seededCatalog(), nil).Times(1)

	stages, err := repo.ListStagesOrdered(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stages) != 2 || stages[0].Code != "claim" {
		t.Fatalf("unexpected stages: %+v", stages)
	}

	steps, err := repo.ListStepTemplates(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 2 || steps[0].Name != "Inspect" {
		t.Fatalf("unexpected steps: %+v", steps)
	}
	if cache.setHits != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.setHits)
	}
}

func TestCachedWorkflowTemplateRepository_EmptyCatalogNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIWorkflowTemplateRepository(ctrl)
	cache := newMemoryCache()
	repo := NewCachedWorkflowTemplateRepository(next, cache, time.Minute, nil)

	next.EXPECT().GetCatalog(gomock.Any()).Return(entities.WorkflowCatalog{}, nil).Times(2)

	for i := 0; i < 2; i++ {
		if _, err := repo.GetCatalog(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if cache.setHits != 0 {
		t.Fatalf("expected no cache fill, got %d", cache.setHits)
	}
}

func TestCachedWorkflowTemplateRepository_CacheDownFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIWorkflowTemplateRepository(ctrl)
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	repo := NewCachedWorkflowTemplateRepository(next, cache, time.Minute, nil)

	next.EXPECT().GetCatalog(gomock.Any()).Return(seededCatalog(), nil)

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog.PhotoTypes) != 1 {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
}

func TestCachedWorkflowTemplateRepository_SaveInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIWorkflowTemplateRepository(ctrl)
	cache := newMemoryCache()
	cache.data[catalogCacheKey] = []byte(`{"stages":[{"id":"old","code":"claim","orderIndex":1}]}`)
	repo := NewCachedWorkflowTemplateRepository(next, cache, time.Minute, nil)

	next.EXPECT().SaveCatalog(gomock.Any(), gomock.Any()).Return(nil)
	if err := repo.SaveCatalog(context.Background(), seededCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.data[catalogCacheKey]; ok {
		t.Fatalf("expected cache entry to be dropped")
	}
}
