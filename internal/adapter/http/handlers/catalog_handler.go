package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "oficina_jobs/internal/adapter/http/dto/response"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/logger"
)

// CatalogHandler serves the read-only workflow templates and vehicle catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, log: logger.OrNop(log)}
}

// ListStages godoc
// @Summary  List workflow stages with their step templates
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.StageResponse
// @Router   /workflow/stages [get]
func (h *CatalogHandler) ListStages(c *gin.Context) {
	stages, err := h.usecase.ListStages(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[catalog][handler] stages failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStages(stages))
}

func (h *CatalogHandler) ListPhotoTypes(c *gin.Context) {
	types, err := h.usecase.ListPhotoTypes(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[catalog][handler] photo types failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.usecase.ListBrands(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[catalog][handler] brands failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *CatalogHandler) ListModels(c *gin.Context) {
	models, err := h.usecase.ListModels(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[catalog][handler] models failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, models)
}

func (h *CatalogHandler) ListTypes(c *gin.Context) {
	types, err := h.usecase.ListTypes(c.Request.Context())
	if err != nil {
		writeError(c, h.log, "[catalog][handler] vehicle types failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, types)
}
