package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: bad status", usecase.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", usecase.ErrJobNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", usecase.ErrVehicleAlreadyExists, http.StatusConflict, "CONFLICT"},
		{"unauthorized", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unavailable", usecase.ErrPhotoStorageDisabled, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"configuration", fmt.Errorf("%w: %w", usecase.ErrConfiguration, workflow.ErrNoStages), http.StatusInternalServerError, "CONFIGURATION_ERROR"},
		{"finished", fmt.Errorf("%w: %w", usecase.ErrConflict, workflow.ErrWorkflowFinished), http.StatusConflict, "WORKFLOW_FINISHED"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapUseCaseError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapUseCaseError_StageNotReady(t *testing.T) {
	err := fmt.Errorf("%w: %w", usecase.ErrConflict, &workflow.StageNotReadyError{StageID: "st-1", PendingSteps: []string{"a", "b"}})
	appErr := mapUseCaseError(err)
	if appErr.HTTPStatus != http.StatusConflict || appErr.Code != "STAGE_NOT_READY" {
		t.Fatalf("unexpected error: %+v", appErr)
	}
	if appErr.Details["pendingSteps"] != "a,b" {
		t.Fatalf("unexpected details: %+v", appErr.Details)
	}
}

func TestErrorMessage_StripsTaxonomyPrefix(t *testing.T) {
	if got := errorMessage(usecase.ErrVehicleAlreadyExists); got != "vehicle registration already exists" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := errorMessage(usecase.ErrJobNotFound); got != "job not found" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func classify(root, err error) error {
	return fmt.Errorf("%w: %w", root, err)
}
