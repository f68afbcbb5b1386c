package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_jobs/internal/adapter/http/dto/request"
	response "oficina_jobs/internal/adapter/http/dto/response"
	"oficina_jobs/internal/adapter/http/middleware"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/api"
	"oficina_jobs/pkg/logger"
)

// JobHandler exposes the job workflow: creation, listing, details, step and
// photo updates and stage advancement.
type JobHandler struct {
	usecase usecase.IJobUseCase
	log     *zap.Logger
}

func NewJobHandler(uc usecase.IJobUseCase, log *zap.Logger) *JobHandler {
	return &JobHandler{usecase: uc, log: logger.OrNop(log)}
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Opens a job and instantiates its stages, steps and photo checklist from the workflow templates.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      request.CreateJobRequest  true  "Job"
// @Success      201  {object}  entities.Job
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req request.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, "[job][handler] create invalid payload", bindError(err))
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, h.log, "[job][handler] create failed", mapUseCaseError(err))
		return
	}
	h.log.Info("[job][handler] created", zap.String("job_id", job.ID), zap.String("job_number", job.JobNumber))

	c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Filters, sorts and paginates jobs. statusCounts ignores the status filter.
// @Tags         jobs
// @Produce      json
// @Param        page                query  int     false  "Page"   default(1)
// @Param        limit               query  int     false  "Limit"  default(10)
// @Param        status              query  string  false  "CLAIM, REPAIR, BILLING, DONE or all"
// @Param        search              query  string  false  "Free text over registration, customer name, chassis, VIN and job number"
// @Param        vehicleRegistration query  string  false  "Plate (alias registration)"
// @Param        customerName        query  string  false  "Customer name (alias customer)"
// @Param        chassisNumber       query  string  false  "Chassis (alias chassis)"
// @Param        vinNumber           query  string  false  "VIN (alias vin)"
// @Param        jobNumber           query  string  false  "Job number"
// @Param        insuranceCompanyId  query  string  false  "Insurance company id"
// @Param        startDateFrom       query  string  false  "YYYY-MM-DD"
// @Param        startDateTo         query  string  false  "YYYY-MM-DD"
// @Param        sortBy              query  string  false  "createdAt, updatedAt, startDate, estimatedEndDate, actualEndDate, jobNumber or status"
// @Param        sortOrder           query  string  false  "asc or desc"
// @Success      200  {object}  response.JobListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q request.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, h.log, "[job][handler] list invalid query", bindError(err))
		return
	}

	list, err := h.usecase.ListJobs(c.Request.Context(), q.ToInput(api.ParsePagination(c)))
	if err != nil {
		writeError(c, h.log, "[job][handler] list failed", mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromJobList(list))
}

// GetJob godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  entities.Job
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[job][handler] get failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateStepStatus godoc
// @Summary      Update a job step status
// @Description  employeeId defaults to the authenticated employee.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        stepId  path      string                           true  "Step id"
// @Param        body    body      request.UpdateStepStatusRequest  true  "Status"
// @Success      200     {object}  entities.JobStep
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /jobs/steps/{stepId} [patch]
func (h *JobHandler) UpdateStepStatus(c *gin.Context) {
	var req request.UpdateStepStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, "[job][handler] step invalid payload", bindError(err))
		return
	}
	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = middleware.EmployeeID(c)
	}

	step, err := h.usecase.UpdateStepStatus(c.Request.Context(), c.Param("stepId"), req.Status, employeeID)
	if err != nil {
		writeError(c, h.log, "[job][handler] step update failed", mapUseCaseError(err))
		return
	}
	h.log.Info("[job][handler] step updated", zap.String("step_id", step.ID), zap.String("status", string(step.Status)))

	c.JSON(http.StatusOK, step)
}

// AdvanceStage godoc
// @Summary      Advance the job to its next stage
// @Description  Completes the current stage when every step is completed or skipped and unlocks the next one.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  entities.Job
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{id}/advance [post]
func (h *JobHandler) AdvanceStage(c *gin.Context) {
	job, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[job][handler] advance failed", mapUseCaseError(err))
		return
	}
	h.log.Info("[job][handler] stage advanced", zap.String("job_id", job.ID), zap.String("status", string(job.Status)))

	c.JSON(http.StatusOK, job)
}

// UpdatePhoto godoc
// @Summary      Mark a job photo as taken or pending
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        photoId  path      string                      true  "Photo id"
// @Param        body     body      request.UpdatePhotoRequest  true  "Photo"
// @Success      200      {object}  entities.JobPhoto
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /jobs/photos/{photoId} [patch]
func (h *JobHandler) UpdatePhoto(c *gin.Context) {
	var req request.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, "[job][handler] photo invalid payload", bindError(err))
		return
	}

	photo, err := h.usecase.UpdatePhoto(c.Request.Context(), c.Param("photoId"), *req.IsCompleted, req.StorageKey)
	if err != nil {
		writeError(c, h.log, "[job][handler] photo update failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, photo)
}

// PhotoUploadURL godoc
// @Summary      Presign a photo upload
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        photoId  path      string                      true   "Photo id"
// @Param        body     body      request.PhotoUploadRequest  false  "Upload"
// @Success      200      {object}  response.PhotoUploadResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /jobs/photos/{photoId}/upload-url [post]
func (h *JobHandler) PhotoUploadURL(c *gin.Context) {
	var req request.PhotoUploadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, h.log, "[job][handler] upload-url invalid payload", bindError(err))
			return
		}
	}

	upload, err := h.usecase.PhotoUploadURL(c.Request.Context(), c.Param("photoId"), req.ContentType)
	if err != nil {
		writeError(c, h.log, "[job][handler] upload-url failed", mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotoUpload(upload))
}
