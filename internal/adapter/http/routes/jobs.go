package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_jobs/internal/adapter/http/handlers"
)

const (
	PathJobs     = "/jobs"
	PathPayments = "/payments"
)

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, paymentHandler *handlers.JobPaymentHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("/:id/advance", jobHandler.AdvanceStage)
		jobs.PATCH("/steps/:stepId", jobHandler.UpdateStepStatus)
		jobs.PATCH("/photos/:photoId", jobHandler.UpdatePhoto)
		jobs.POST("/photos/:photoId/upload-url", jobHandler.PhotoUploadURL)

		jobs.POST("/:id/payments", paymentHandler.CreatePayment)
		jobs.GET("/:id/payments", paymentHandler.ListPayments)
	}

	rg.GET(PathPayments+"/:paymentId", paymentHandler.GetPayment)
}
