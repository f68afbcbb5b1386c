package workflow

import (
	"fmt"
	"sort"
	"time"

	"oficina_jobs/internal/domain/entities"
)

// ParseStepStatus validates a raw status value.
func ParseStepStatus(raw string) (entities.StepStatus, error) {
	s := entities.StepStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStepStatus, raw)
	}
	return s, nil
}

// TransitionStep applies a status update to a step and returns the updated
// copy. Any of the four statuses may follow any other, except that skipped
// requires a skippable template. completedAt is stamped when entering
// completed and cleared for every other status. A non-empty employeeID
// replaces the step owner.
func TransitionStep(
	step entities.JobStep,
	tmpl entities.StepTemplate,
	next entities.StepStatus,
	employeeID string,
	now time.Time,
) (entities.JobStep, error) {
	if !next.IsValid() {
		return entities.JobStep{}, fmt.Errorf("%w: %q", ErrInvalidStepStatus, next)
	}
	if next == entities.StepStatusSkipped && !tmpl.IsSkippable {
		return entities.JobStep{}, fmt.Errorf("%w: %s", ErrStepNotSkippable, tmpl.Name)
	}

	step.Status = next
	if employeeID != "" {
		step.EmployeeID = employeeID
	}
	if next == entities.StepStatusCompleted {
		step.CompletedAt = timePtr(now)
	} else {
		step.CompletedAt = nil
	}
	step.UpdatedAt = now
	return step, nil
}

// StageAdvance is the outcome of completing the active stage of a job.
type StageAdvance struct {
	CompletedStage    entities.JobStage
	NextStage         *entities.JobStage
	Status            entities.JobStatus
	CurrentStageIndex int
	Finished          bool
	At                time.Time
}

// AdvanceStage completes the active stage of job and unlocks the next one.
// The active stage is the first non-completed stage in order; every one of
// its steps must be completed or skipped. Completing the last stage
// finishes the job. A job already marked finished never advances, even
// when it was created as DONE with open stages.
func AdvanceStage(job entities.Job, now time.Time) (StageAdvance, error) {
	if job.IsFinished {
		return StageAdvance{}, ErrWorkflowFinished
	}
	stages := append([]entities.JobStage(nil), job.Stages...)
	if len(stages) == 0 {
		return StageAdvance{}, ErrNoStages
	}
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].StageOrderIndex < stages[j].StageOrderIndex })

	current := -1
	for i, s := range stages {
		if !s.IsCompleted {
			current = i
			break
		}
	}
	if current < 0 {
		return StageAdvance{}, ErrWorkflowFinished
	}

	active := stages[current]
	var pending []string
	for _, step := range active.Steps {
		if !step.Status.IsResolved() {
			name := step.ID
			if step.StepTemplate != nil {
				name = step.StepTemplate.Name
			}
			pending = append(pending, name)
		}
	}
	if len(pending) > 0 {
		return StageAdvance{}, &StageNotReadyError{StageID: active.StageID, PendingSteps: pending}
	}

	active.IsLocked = false
	active.IsCompleted = true
	if active.StartedAt == nil {
		active.StartedAt = timePtr(now)
	}
	active.CompletedAt = timePtr(now)

	out := StageAdvance{CompletedStage: active, Status: job.Status, At: now}

	if current == len(stages)-1 {
		out.Finished = true
		out.Status = entities.JobStatusDone
		out.CurrentStageIndex = current
		return out, nil
	}

	next := stages[current+1]
	next.IsLocked = false
	next.StartedAt = timePtr(now)
	out.NextStage = &next
	out.CurrentStageIndex = current + 1
	if next.Stage != nil {
		if status, ok := entities.JobStatusForStage(next.Stage.Code); ok {
			out.Status = status
		}
	}
	return out, nil
}
