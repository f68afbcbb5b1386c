package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_jobs/internal/adapter/http/dto/request"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/api"
	"oficina_jobs/pkg/logger"
)

// masterDataService is the CRUD surface shared by the customer, vehicle,
// employee and insurance company use cases.
type masterDataService[E, I any] interface {
	Create(ctx context.Context, in I) (E, error)
	GetByID(ctx context.Context, id string) (E, error)
	List(ctx context.Context, search string, page api.PageRequest) (api.Page[E], error)
	Update(ctx context.Context, id string, in I) (E, error)
	Delete(ctx context.Context, id string) error
}

type inputRequest[I any] interface {
	ToInput() I
}

// MasterDataHandler serves plain CRUD for one kind of reference record.
type MasterDataHandler[E, I any, R inputRequest[I]] struct {
	usecase masterDataService[E, I]
	area    string
	log     *zap.Logger
}

type (
	CustomerHandler         = MasterDataHandler[entities.Customer, usecase.CustomerInput, request.CustomerRequest]
	VehicleHandler          = MasterDataHandler[entities.Vehicle, usecase.VehicleInput, request.VehicleRequest]
	EmployeeHandler         = MasterDataHandler[entities.Employee, usecase.EmployeeInput, request.EmployeeRequest]
	InsuranceCompanyHandler = MasterDataHandler[entities.InsuranceCompany, usecase.InsuranceCompanyInput, request.InsuranceCompanyRequest]
)

func NewCustomerHandler(uc usecase.ICustomerUseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{usecase: uc, area: "customer", log: logger.OrNop(log)}
}

func NewVehicleHandler(uc usecase.IVehicleUseCase, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{usecase: uc, area: "vehicle", log: logger.OrNop(log)}
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc, area: "employee", log: logger.OrNop(log)}
}

func NewInsuranceCompanyHandler(uc usecase.IInsuranceCompanyUseCase, log *zap.Logger) *InsuranceCompanyHandler {
	return &InsuranceCompanyHandler{usecase: uc, area: "insurance", log: logger.OrNop(log)}
}

func (h *MasterDataHandler[E, I, R]) msg(s string) string {
	return "[" + h.area + "][handler] " + s
}

func (h *MasterDataHandler[E, I, R]) Create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, h.msg("create invalid payload"), bindError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, h.log, h.msg("create failed"), mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MasterDataHandler[E, I, R]) Get(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, h.msg("get failed"), mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *MasterDataHandler[E, I, R]) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	page, err := h.usecase.List(c.Request.Context(), search, api.ParsePagination(c))
	if err != nil {
		writeError(c, h.log, h.msg("list failed"), mapUseCaseError(err))
		return
	}
	if page.Data == nil {
		page.Data = []E{}
	}
	c.JSON(http.StatusOK, page)
}

func (h *MasterDataHandler[E, I, R]) Update(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, h.msg("update invalid payload"), bindError(err))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		writeError(c, h.log, h.msg("update failed"), mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MasterDataHandler[E, I, R]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, h.msg("delete failed"), mapUseCaseError(err))
		return
	}
	h.log.Info(h.msg("deleted"), zap.String("id", id))
	c.Status(http.StatusNoContent)
}
