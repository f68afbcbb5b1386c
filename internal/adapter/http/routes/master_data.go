package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_jobs/internal/adapter/http/middleware"
	"oficina_jobs/internal/domain/entities"
)

type crudHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func addMasterDataRoutes(rg *gin.RouterGroup, h Handlers) {
	addCRUD(rg.Group("/customers"), h.Customers)
	addCRUD(rg.Group("/vehicles"), h.Vehicles)
	addCRUD(rg.Group("/insurance-companies"), h.InsuranceCompanies)

	// Only admins and managers change the staff list.
	employees := rg.Group("/employees")
	employees.GET("", h.Employees.List)
	employees.GET("/:id", h.Employees.Get)
	managers := employees.Group("", middleware.RequireRole(string(entities.EmployeeRoleAdmin), string(entities.EmployeeRoleManager)))
	managers.POST("", h.Employees.Create)
	managers.PUT("/:id", h.Employees.Update)
	managers.DELETE("/:id", h.Employees.Delete)
}

func addCRUD(rg *gin.RouterGroup, h crudHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
