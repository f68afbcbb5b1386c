package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/adapter/http/handlers/mocks"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	uc := mocks.NewMockICatalogUseCase(gomock.NewController(t))
	h := NewCatalogHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/workflow/stages", h.ListStages)
	r.GET("/v1/workflow/photo-types", h.ListPhotoTypes)
	r.GET("/v1/vehicle-brands", h.ListBrands)
	r.GET("/v1/vehicle-brands/:id/models", h.ListModels)
	r.GET("/v1/vehicle-types", h.ListTypes)
	return r, uc
}

func TestCatalogHandler_ListStages(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ListStages(gomock.Any()).Return([]usecase.StageWithSteps{{
			Stage:         entities.Stage{ID: "st-1", Code: "claim", Name: "Claim", OrderIndex: 1},
			StepTemplates: []entities.StepTemplate{{ID: "t-1", StageID: "st-1", Name: "Open claim", OrderIndex: 1}},
		}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/workflow/stages", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []struct {
			Code          string                  `json:"code"`
			StepTemplates []entities.StepTemplate `json:"stepTemplates"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) != 1 || body[0].Code != "claim" || len(body[0].StepTemplates) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("not seeded", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().ListStages(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", usecase.ErrConfiguration, workflow.ErrNoStages))

		w := doJSON(r, http.MethodGet, "/v1/workflow/stages", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_VehicleCatalog(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().ListBrands(gomock.Any()).Return([]entities.VehicleBrand{{ID: "b-1", Name: "Fiat"}}, nil)
	uc.EXPECT().ListModels(gomock.Any(), "b-1").Return([]entities.VehicleModel{{ID: "m-1", BrandID: "b-1"}}, nil)
	uc.EXPECT().ListTypes(gomock.Any()).Return([]entities.VehicleType{}, nil)
	uc.EXPECT().ListPhotoTypes(gomock.Any()).Return([]entities.PhotoType{{ID: "p-1", Code: "front"}}, nil)

	for _, path := range []string{"/v1/vehicle-brands", "/v1/vehicle-brands/b-1/models", "/v1/vehicle-types", "/v1/workflow/photo-types"} {
		if w := doJSON(r, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
