package usecase

import (
	"errors"
	"fmt"

	"oficina_jobs/internal/domain/workflow"
	"oficina_jobs/internal/usecase/interfaces"
)

// Error taxonomy. Every error returned by a use case wraps one of these
// roots so the HTTP layer can pick a status with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = interfaces.ErrConflict
	ErrConfiguration = errors.New("configuration error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUnavailable   = errors.New("service unavailable")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// classifyWorkflowError attaches a taxonomy root to a workflow error while
// keeping the original sentinel reachable through errors.Is.
func classifyWorkflowError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, workflow.ErrInvalidStepStatus), errors.Is(err, workflow.ErrStepNotSkippable):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, workflow.ErrNoStages), errors.Is(err, workflow.ErrUnknownStage):
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	case errors.Is(err, workflow.ErrStageNotReady), errors.Is(err, workflow.ErrWorkflowFinished):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
