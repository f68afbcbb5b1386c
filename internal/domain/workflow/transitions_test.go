package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina_jobs/internal/domain/entities"
)

func TestTransitionStep(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)
	required := entities.StepTemplate{ID: "t-1", Name: "Body work"}
	optional := entities.StepTemplate{ID: "t-2", Name: "Polish", IsSkippable: true}

	tests := []struct {
		name          string
		step          entities.JobStep
		tmpl          entities.StepTemplate
		next          entities.StepStatus
		employeeID    string
		wantErr       error
		wantCompleted bool
		wantEmployee  string
	}{
		{name: "pending to in_progress", step: entities.JobStep{Status: entities.StepStatusPending}, tmpl: required, next: entities.StepStatusInProgress, employeeID: "emp-1", wantEmployee: "emp-1"},
		{name: "in_progress to completed", step: entities.JobStep{Status: entities.StepStatusInProgress, EmployeeID: "emp-1"}, tmpl: required, next: entities.StepStatusCompleted, wantCompleted: true, wantEmployee: "emp-1"},
		{name: "reopen clears completedAt", step: entities.JobStep{Status: entities.StepStatusCompleted, CompletedAt: &earlier}, tmpl: required, next: entities.StepStatusInProgress},
		{name: "skip allowed", step: entities.JobStep{Status: entities.StepStatusPending}, tmpl: optional, next: entities.StepStatusSkipped},
		{name: "skip forbidden", step: entities.JobStep{Status: entities.StepStatusPending}, tmpl: required, next: entities.StepStatusSkipped, wantErr: ErrStepNotSkippable},
		{name: "invalid status", step: entities.JobStep{Status: entities.StepStatusPending}, tmpl: required, next: "bogus", wantErr: ErrInvalidStepStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionStep(tt.step, tt.tmpl, tt.next, tt.employeeID, now)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, got.Status)
			assert.Equal(t, tt.wantEmployee, got.EmployeeID)
			assert.Equal(t, now, got.UpdatedAt)
			if tt.wantCompleted {
				require.NotNil(t, got.CompletedAt)
				assert.Equal(t, now, *got.CompletedAt)
			} else {
				assert.Nil(t, got.CompletedAt)
			}
		})
	}
}

func newJobAtClaim(t *testing.T) entities.Job {
	t.Helper()
	now := time.Now().UTC()
	plan, err := InitializeJobWorkflow(testStages(), testTemplates(), 1, now)
	require.NoError(t, err)
	return entities.Job{
		ID:     "job-1",
		Status: entities.JobStatusClaim,
		Stages: plan.JobStages("job-1", sequentialIDs(), now),
	}
}

func resolveSteps(stage *entities.JobStage, status entities.StepStatus) {
	for i := range stage.Steps {
		stage.Steps[i].Status = status
	}
}

func TestAdvanceStage_RequiresResolvedSteps(t *testing.T) {
	job := newJobAtClaim(t)
	job.Stages[0].Steps[0].Status = entities.StepStatusCompleted

	_, err := AdvanceStage(job, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStageNotReady)

	var notReady *StageNotReadyError
	require.True(t, errors.As(err, &notReady))
	assert.Equal(t, []string{"Send estimate"}, notReady.PendingSteps)
}

func TestAdvanceStage_UnlocksNextStage(t *testing.T) {
	job := newJobAtClaim(t)
	resolveSteps(&job.Stages[0], entities.StepStatusCompleted)
	now := time.Now().UTC()

	adv, err := AdvanceStage(job, now)
	require.NoError(t, err)

	assert.True(t, adv.CompletedStage.IsCompleted)
	require.NotNil(t, adv.CompletedStage.CompletedAt)
	require.NotNil(t, adv.NextStage)
	assert.Equal(t, "st-repair", adv.NextStage.StageID)
	assert.False(t, adv.NextStage.IsLocked)
	assert.Equal(t, entities.JobStatusRepair, adv.Status)
	assert.Equal(t, 1, adv.CurrentStageIndex)
	assert.False(t, adv.Finished)
}

func TestAdvanceStage_SkippedStepsResolveStage(t *testing.T) {
	job := newJobAtClaim(t)
	resolveSteps(&job.Stages[0], entities.StepStatusCompleted)
	job.Stages[0].IsCompleted = true
	job.Stages[1].IsLocked = false
	job.Stages[1].Steps[0].Status = entities.StepStatusCompleted
	job.Stages[1].Steps[1].Status = entities.StepStatusSkipped

	adv, err := AdvanceStage(job, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entities.JobStatusBilling, adv.Status)
}

func TestAdvanceStage_LastStageFinishesJob(t *testing.T) {
	job := newJobAtClaim(t)
	for i := range job.Stages[:2] {
		resolveSteps(&job.Stages[i], entities.StepStatusCompleted)
		job.Stages[i].IsCompleted = true
		job.Stages[i].IsLocked = false
	}
	job.Stages[2].IsLocked = false
	resolveSteps(&job.Stages[2], entities.StepStatusCompleted)

	adv, err := AdvanceStage(job, time.Now())
	require.NoError(t, err)
	assert.True(t, adv.Finished)
	assert.Nil(t, adv.NextStage)
	assert.Equal(t, entities.JobStatusDone, adv.Status)
	assert.Equal(t, 2, adv.CurrentStageIndex)

	job.Stages[2].IsCompleted = true
	_, err = AdvanceStage(job, time.Now())
	assert.ErrorIs(t, err, ErrWorkflowFinished)
}

func TestAdvanceStage_FinishedJobWithOpenStages(t *testing.T) {
	job := newJobAtClaim(t)
	resolveSteps(&job.Stages[0], entities.StepStatusCompleted)
	job.Status = entities.JobStatusDone
	job.IsFinished = true

	_, err := AdvanceStage(job, time.Now())
	assert.ErrorIs(t, err, ErrWorkflowFinished)
}

func TestAdvanceStage_NoStages(t *testing.T) {
	_, err := AdvanceStage(entities.Job{ID: "job-1"}, time.Now())
	assert.ErrorIs(t, err, ErrNoStages)
}
