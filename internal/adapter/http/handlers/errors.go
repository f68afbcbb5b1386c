package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg"
)

// mapUseCaseError turns a use case error into the HTTP envelope using the
// error taxonomy roots.
func mapUseCaseError(err error) *pkg.AppError {
	var notReady *workflow.StageNotReadyError
	switch {
	case errors.As(err, &notReady):
		return pkg.NewDomainErrorSimple("STAGE_NOT_READY", "Current stage has unresolved steps", http.StatusConflict).
			WithDetail("stageId", notReady.StageID).
			WithDetail("pendingSteps", strings.Join(notReady.PendingSteps, ","))
	case errors.Is(err, workflow.ErrWorkflowFinished):
		return pkg.NewDomainErrorSimple("WORKFLOW_FINISHED", "Job workflow is already finished", http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", errorMessage(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", errorMessage(err), http.StatusNotFound)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", errorMessage(err), http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", errorMessage(err), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", errorMessage(err), http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("CONFIGURATION_ERROR", "Workflow templates are not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// errorMessage drops the taxonomy prefix so clients only see the cause.
func errorMessage(err error) string {
	msg := err.Error()
	for _, root := range []error{usecase.ErrValidation, usecase.ErrConflict, usecase.ErrUnauthorized, usecase.ErrUnavailable} {
		msg = strings.TrimPrefix(msg, root.Error()+": ")
	}
	return msg
}

// bindError reports request binding failures. Validation failures list the
// offending fields with the rule they broke.
func bindError(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			appErr.WithDetail(lowerFirst(fe.Field()), fe.Tag())
		}
	}
	return appErr
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func writeError(c *gin.Context, log *zap.Logger, msg string, appErr *pkg.AppError) {
	fields := []zap.Field{zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus)}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(msg, fields...)
	} else {
		log.Info(msg, fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
