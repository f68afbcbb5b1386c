package workflow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoStages is returned when no stages are seeded; a job cannot be created without a workflow.
	ErrNoStages = errors.New("no workflow stages configured")

	// ErrUnknownStage is returned when the requested current stage order index matches no stage.
	ErrUnknownStage = errors.New("current stage order index matches no stage")

	// ErrInvalidStepStatus is returned for a step status outside the closed set.
	ErrInvalidStepStatus = errors.New("invalid step status")

	// ErrStepNotSkippable is returned when skipping a step whose template forbids it.
	ErrStepNotSkippable = errors.New("step is not skippable")

	// ErrStageNotReady is returned when advancing a stage that still has unresolved steps.
	ErrStageNotReady = errors.New("current stage has unresolved steps")

	// ErrWorkflowFinished is returned when advancing a job whose stages are all completed.
	ErrWorkflowFinished = errors.New("workflow already finished")
)

// StageNotReadyError names the steps that block a stage advance.
type StageNotReadyError struct {
	StageID      string
	PendingSteps []string
}

func (e *StageNotReadyError) Error() string {
	return fmt.Sprintf("%s: stage %s pending [%s]", ErrStageNotReady, e.StageID, strings.Join(e.PendingSteps, ", "))
}

func (e *StageNotReadyError) Unwrap() error {
	return ErrStageNotReady
}
