package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_jobs/internal/adapter/http/dto/request"
	response "oficina_jobs/internal/adapter/http/dto/response"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg"
	"oficina_jobs/pkg/logger"
)

// JobPaymentHandler handles the charges collected while a job is in billing.
type JobPaymentHandler struct {
	usecase usecase.IJobPaymentUseCase
	log     *zap.Logger
}

func NewJobPaymentHandler(uc usecase.IJobPaymentUseCase, log *zap.Logger) *JobPaymentHandler {
	return &JobPaymentHandler{usecase: uc, log: logger.OrNop(log)}
}

// CreatePayment godoc
// @Summary      Charge a job
// @Description  Accepts {"amount", "mp_payload"} or a bare Mercado Pago payload. Insurance jobs charge the excess fee.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Job id"
// @Param        body  body      request.JobPaymentCreateRequest  true  "Payment"
// @Success      201   {object}  response.JobPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /jobs/{id}/payments [post]
func (h *JobPaymentHandler) CreatePayment(c *gin.Context) {
	jobID := c.Param("id")
	h.log.Info("[payment][handler] create start", zap.String("job_id", jobID))

	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, h.log, "[payment][handler] read body failed", pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}
	req, err := request.ParseJobPaymentCreateRequest(raw)
	if err != nil {
		writeError(c, h.log, "[payment][handler] invalid payload", pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), jobID, req.Amount, req.MPPayload)
	if err != nil {
		writeError(c, h.log, "[payment][handler] create failed", mapJobPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] create success",
		zap.String("job_id", jobID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromJobPayment(created))
}

// ListPayments godoc
// @Summary      List the payments of a job, newest first
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {array}   response.JobPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id}/payments [get]
func (h *JobPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, "[payment][handler] list failed", mapJobPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        paymentId  path      string  true  "Payment id"
// @Success      200        {object}  response.JobPaymentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /payments/{paymentId} [get]
func (h *JobPaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		writeError(c, h.log, "[payment][handler] get failed", mapJobPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobPayment(payment))
}

func mapJobPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotInBilling):
		return pkg.NewDomainErrorSimple("JOB_NOT_IN_BILLING", "Job is not in the billing stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
