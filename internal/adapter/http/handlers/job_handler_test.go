package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/adapter/http/handlers/mocks"
	"oficina_jobs/internal/adapter/http/middleware"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/jobquery"
	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/api"
)

func newJobRouter(t *testing.T) (*gin.Engine, *mocks.MockIJobUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/jobs", h.CreateJob)
	r.GET("/v1/jobs", h.ListJobs)
	r.GET("/v1/jobs/:id", h.GetJob)
	r.POST("/v1/jobs/:id/advance", h.AdvanceStage)
	r.PATCH("/v1/jobs/steps/:stepId", h.UpdateStepStatus)
	r.PATCH("/v1/jobs/photos/:photoId", h.UpdatePhoto)
	r.POST("/v1/jobs/photos/:photoId/upload-url", h.PhotoUploadURL)
	return r, uc
}

func TestJobHandler_CreateJob(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newJobRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/jobs", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		r, _ := newJobRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/jobs", `{"vehicleId":"v-1","customerId":"c-1","status":"ARCHIVED"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"jobstatus"`) {
			t.Fatalf("expected field detail, got %s", w.Body.String())
		}
	})

	t.Run("missing references", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrVehicleRefRequired)

		w := doJSON(r, http.MethodPost, "/v1/jobs", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrJobAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/jobs", `{"vehicleId":"v-1","customerId":"c-1","jobNumber":"J-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.CreateJobInput) (entities.Job, error) {
			if in.Vehicle == nil || in.Vehicle.Registration != "ABC1D23" {
				t.Fatalf("unexpected vehicle input: %+v", in.Vehicle)
			}
			if in.Customer == nil || in.Customer.Phone != "11999990000" {
				t.Fatalf("unexpected customer input: %+v", in.Customer)
			}
			return entities.Job{ID: "job-1", JobNumber: "J-2026-0001", Status: entities.JobStatusClaim}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/jobs",
			`{"vehicle":{"registration":"ABC1D23"},"customer":{"name":"Maria","phone":"11999990000"},"status":"claim"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got entities.Job
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "job-1" || got.Status != entities.JobStatusClaim {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestJobHandler_ListJobs(t *testing.T) {
	t.Run("passes filters and pagination", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().ListJobs(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ListJobsInput) (usecase.JobList, error) {
			if in.Status != "REPAIR" || in.Registration != "ABC" || in.CustomerName != "ana" {
				t.Fatalf("unexpected filters: %+v", in)
			}
			if in.Page != (api.PageRequest{Page: 2, Limit: 5}) {
				t.Fatalf("unexpected page: %+v", in.Page)
			}
			return usecase.JobList{
				Page:         api.Page[entities.Job]{Data: []entities.Job{{ID: "job-1"}}, Total: 6, Page: 2, Limit: 5, TotalPages: 2},
				StatusCounts: jobquery.StatusCounts{"all": 9, "REPAIR": 6},
			}, nil
		})

		w := doJSON(r, http.MethodGet, "/v1/jobs?status=REPAIR&registration=ABC&customer=ana&page=2&limit=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Data         []entities.Job `json:"data"`
			Total        int            `json:"total"`
			TotalPages   int            `json:"totalPages"`
			StatusCounts map[string]int `json:"statusCounts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body.Data) != 1 || body.Total != 6 || body.TotalPages != 2 || body.StatusCounts["all"] != 9 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().ListJobs(gomock.Any(), gomock.Any()).Return(usecase.JobList{}, usecase.ErrValidation)

		w := doJSON(r, http.MethodGet, "/v1/jobs?startDateFrom=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().GetJobDetails(gomock.Any(), "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodGet, "/v1/jobs/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().GetJobDetails(gomock.Any(), "job-1").Return(entities.Job{
			ID: "job-1",
			Stages: []entities.JobStage{{
				ID:    "js-1",
				Steps: []entities.JobStep{{ID: "step-1", Status: entities.StepStatusPending}},
			}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs/job-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"jobStages":[`) || !strings.Contains(w.Body.String(), `"jobSteps":[`) {
			t.Fatalf("expected nested stages and steps, got %s", w.Body.String())
		}
	})
}

func TestJobHandler_UpdateStepStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		r, _ := newJobRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/jobs/steps/step-1", `{"status":"done"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("step not found", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().UpdateStepStatus(gomock.Any(), "missing", "completed", "").Return(entities.JobStep{}, usecase.ErrStepNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/steps/missing", `{"status":"completed"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("not skippable", func(t *testing.T) {
		r, uc := newJobRouter(t)
		err := classify(usecase.ErrValidation, workflow.ErrStepNotSkippable)
		uc.EXPECT().UpdateStepStatus(gomock.Any(), "step-1", "skipped", "emp-1").Return(entities.JobStep{}, err)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/steps/step-1", `{"status":"skipped","employeeId":"emp-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults employee to the authenticated one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/jobs/steps/:stepId", func(c *gin.Context) {
			c.Set(middleware.ContextKeyEmployeeID, "emp-auth")
			c.Next()
		}, h.UpdateStepStatus)

		now := time.Now().UTC()
		uc.EXPECT().UpdateStepStatus(gomock.Any(), "step-1", "completed", "emp-auth").
			Return(entities.JobStep{ID: "step-1", Status: entities.StepStatusCompleted, EmployeeID: "emp-auth", CompletedAt: &now}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/steps/step-1", `{"status":"completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"completedAt"`) {
			t.Fatalf("expected completedAt, got %s", w.Body.String())
		}
	})
}

func TestJobHandler_AdvanceStage(t *testing.T) {
	t.Run("stage not ready", func(t *testing.T) {
		r, uc := newJobRouter(t)
		err := classify(usecase.ErrConflict, &workflow.StageNotReadyError{StageID: "st-1", PendingSteps: []string{"step-9"}})
		uc.EXPECT().AdvanceStage(gomock.Any(), "job-1").Return(entities.Job{}, err)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "STAGE_NOT_READY") || !strings.Contains(w.Body.String(), "step-9") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("finished", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().AdvanceStage(gomock.Any(), "job-1").Return(entities.Job{}, classify(usecase.ErrConflict, workflow.ErrWorkflowFinished))

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().AdvanceStage(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusRepair, CurrentStageIndex: 1}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/advance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_UpdatePhoto(t *testing.T) {
	t.Run("missing isCompleted", func(t *testing.T) {
		r, _ := newJobRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/jobs/photos/ph-1", `{"storageKey":"k"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("false is accepted", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().UpdatePhoto(gomock.Any(), "ph-1", false, "").Return(entities.JobPhoto{ID: "ph-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/photos/ph-1", `{"isCompleted":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().UpdatePhoto(gomock.Any(), "ph-x", true, "jobs/j/photos/ph-x/k").Return(entities.JobPhoto{}, usecase.ErrPhotoNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/jobs/photos/ph-x", `{"isCompleted":true,"storageKey":"jobs/j/photos/ph-x/k"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_PhotoUploadURL(t *testing.T) {
	t.Run("storage disabled", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().PhotoUploadURL(gomock.Any(), "ph-1", "").Return(usecase.PhotoUpload{}, usecase.ErrPhotoStorageDisabled)

		w := doJSON(r, http.MethodPost, "/v1/jobs/photos/ph-1/upload-url", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newJobRouter(t)
		exp := time.Now().Add(15 * time.Minute).UTC()
		uc.EXPECT().PhotoUploadURL(gomock.Any(), "ph-1", "image/png").
			Return(usecase.PhotoUpload{URL: "https://bucket/put", StorageKey: "jobs/j/photos/ph-1/k", ExpiresAt: exp}, nil)

		w := doJSON(r, http.MethodPost, "/v1/jobs/photos/ph-1/upload-url", `{"contentType":"image/png"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"url":"https://bucket/put"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
