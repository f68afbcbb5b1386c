package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_jobs/internal/adapter/http/handlers"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	workflow := rg.Group("/workflow")
	{
		workflow.GET("/stages", h.ListStages)
		workflow.GET("/photo-types", h.ListPhotoTypes)
	}

	rg.GET("/vehicle-brands", h.ListBrands)
	rg.GET("/vehicle-brands/:id/models", h.ListModels)
	rg.GET("/vehicle-types", h.ListTypes)
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/auth/login", h.Login)
}
