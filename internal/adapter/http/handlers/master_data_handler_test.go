package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/adapter/http/handlers/mocks"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/api"
)

type crudRoutes interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mountCRUD(h crudRoutes, base string) *gin.Engine {
	r := gin.New()
	r.POST(base, h.Create)
	r.GET(base, h.List)
	r.GET(base+"/:id", h.Get)
	r.PUT(base+"/:id", h.Update)
	r.DELETE(base+"/:id", h.Delete)
	return r
}

func TestCustomerHandler(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase) {
		uc := mocks.NewMockICustomerUseCase(gomock.NewController(t))
		return mountCRUD(NewCustomerHandler(uc, nil), "/v1/customers"), uc
	}

	t.Run("create requires phone", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Maria"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CustomerInput{Name: "Maria", Phone: "119"}).Return(entities.Customer{}, usecase.ErrCustomerAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Maria","phone":"119"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{ID: "c-1", Name: "Maria", Phone: "119"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Maria","phone":"119","email":"maria@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any(), "mar", api.PageRequest{Page: 1, Limit: 20}).
			Return(api.Page[entities.Customer]{Total: 0, Page: 1, Limit: 20}, nil)

		w := doJSON(r, http.MethodGet, "/v1/customers?search=mar&limit=20", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"data":[]`) {
			t.Fatalf("expected empty data array, got %s", w.Body.String())
		}
	})

	t.Run("delete in use", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(usecase.ErrCustomerInUse)

		w := doJSON(r, http.MethodDelete, "/v1/customers/c-1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/customers/c-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestVehicleHandler(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIVehicleUseCase) {
		uc := mocks.NewMockIVehicleUseCase(gomock.NewController(t))
		return mountCRUD(NewVehicleHandler(uc, nil), "/v1/vehicles"), uc
	}

	t.Run("get not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "v-x").Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		w := doJSON(r, http.MethodGet, "/v1/vehicles/v-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Update(gomock.Any(), "v-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in usecase.VehicleInput) (entities.Vehicle, error) {
				if in.Registration != "abc1d23" || in.Year != 2019 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Vehicle{ID: "v-1", Registration: "ABC1D23", Year: 2019}, nil
			})

		w := doJSON(r, http.MethodPut, "/v1/vehicles/v-1", `{"registration":"abc1d23","year":2019}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("year out of range", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/vehicles", `{"registration":"abc1d23","year":1800}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEmployeeHandler(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIEmployeeUseCase) {
		uc := mocks.NewMockIEmployeeUseCase(gomock.NewController(t))
		return mountCRUD(NewEmployeeHandler(uc, nil), "/v1/employees"), uc
	}

	t.Run("invalid role", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/employees", `{"name":"Ana","username":"ana","password":"password1","role":"owner"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create hides password hash", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Employee{ID: "e-1", Username: "ana", PasswordHash: "$2a$hash", Role: entities.EmployeeRoleTechnician, IsActive: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/employees", `{"name":"Ana","username":"ana","password":"password1","role":"Technician"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := body["passwordHash"]; ok || strings.Contains(w.Body.String(), "$2a$hash") {
			t.Fatalf("password hash leaked: %s", w.Body.String())
		}
	})
}

func TestInsuranceCompanyHandler(t *testing.T) {
	uc := mocks.NewMockIInsuranceCompanyUseCase(gomock.NewController(t))
	r := mountCRUD(NewInsuranceCompanyHandler(uc, nil), "/v1/insurance-companies")

	uc.EXPECT().Delete(gomock.Any(), "ins-1").Return(usecase.ErrInsuranceCompanyInUse)

	w := doJSON(r, http.MethodDelete, "/v1/insurance-companies/ins-1", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
