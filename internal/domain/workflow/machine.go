package workflow

import (
	"fmt"
	"sort"
	"time"

	"oficina_jobs/internal/domain/entities"
)

// StagePlan is the computed initial state of one stage of a new job.
type StagePlan struct {
	Stage       entities.Stage
	IsLocked    bool
	IsCompleted bool
	StartedAt   *time.Time
	CompletedAt *time.Time
	Steps       []StepPlan
}

// StepPlan is the computed initial state of one step.
type StepPlan struct {
	Template    entities.StepTemplate
	Status      entities.StepStatus
	CompletedAt *time.Time
}

// Plan is the full initial workflow state of a job, stages in order.
type Plan struct {
	Stages []StagePlan
}

// InitializeJobWorkflow computes the initial lock/complete/start state of
// every stage and step. Stages before currentStageOrderIndex are completed,
// the stage at currentStageOrderIndex is the active one and later stages
// are locked. Job creation always passes 1.
func InitializeJobWorkflow(
	stagesOrdered []entities.Stage,
	stepTemplatesByStage map[string][]entities.StepTemplate,
	currentStageOrderIndex int,
	now time.Time,
) (Plan, error) {
	if len(stagesOrdered) == 0 {
		return Plan{}, ErrNoStages
	}

	stages := append([]entities.Stage(nil), stagesOrdered...)
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].OrderIndex < stages[j].OrderIndex })

	found := false
	for _, s := range stages {
		if s.OrderIndex == currentStageOrderIndex {
			found = true
			break
		}
	}
	if !found {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownStage, currentStageOrderIndex)
	}

	plan := Plan{Stages: make([]StagePlan, 0, len(stages))}
	for _, stage := range stages {
		templates := append([]entities.StepTemplate(nil), stepTemplatesByStage[stage.ID]...)
		sort.SliceStable(templates, func(i, j int) bool { return templates[i].OrderIndex < templates[j].OrderIndex })

		sp := StagePlan{Stage: stage}
		stepStatus := entities.StepStatusPending

		switch {
		case stage.OrderIndex < currentStageOrderIndex:
			sp.IsCompleted = true
			sp.StartedAt = timePtr(now)
			sp.CompletedAt = timePtr(now)
			stepStatus = entities.StepStatusCompleted
		case stage.OrderIndex == currentStageOrderIndex:
			sp.StartedAt = timePtr(now)
		default:
			sp.IsLocked = true
		}

		sp.Steps = make([]StepPlan, 0, len(templates))
		for _, tmpl := range templates {
			step := StepPlan{Template: tmpl, Status: stepStatus}
			if stepStatus == entities.StepStatusCompleted {
				step.CompletedAt = timePtr(now)
			}
			sp.Steps = append(sp.Steps, step)
		}
		plan.Stages = append(plan.Stages, sp)
	}
	return plan, nil
}

// CurrentStageIndex returns the 0-based position of the active stage.
func (p Plan) CurrentStageIndex() int {
	for i, s := range p.Stages {
		if !s.IsLocked && !s.IsCompleted {
			return i
		}
	}
	return len(p.Stages) - 1
}

// StepCount returns the number of steps across all stages.
func (p Plan) StepCount() int {
	n := 0
	for _, s := range p.Stages {
		n += len(s.Steps)
	}
	return n
}

// JobStages materializes the plan into entities owned by jobID. newID
// supplies identifiers for every stage and step.
func (p Plan) JobStages(jobID string, newID func() string, now time.Time) []entities.JobStage {
	out := make([]entities.JobStage, 0, len(p.Stages))
	for _, sp := range p.Stages {
		stage := sp.Stage
		js := entities.JobStage{
			ID:              newID(),
			JobID:           jobID,
			StageID:         stage.ID,
			StageOrderIndex: stage.OrderIndex,
			IsLocked:        sp.IsLocked,
			IsCompleted:     sp.IsCompleted,
			StartedAt:       sp.StartedAt,
			CompletedAt:     sp.CompletedAt,
			Stage:           &stage,
			Steps:           make([]entities.JobStep, 0, len(sp.Steps)),
		}
		for _, step := range sp.Steps {
			tmpl := step.Template
			js.Steps = append(js.Steps, entities.JobStep{
				ID:             newID(),
				JobID:          jobID,
				JobStageID:     js.ID,
				StepTemplateID: tmpl.ID,
				StepOrderIndex: tmpl.OrderIndex,
				Status:         step.Status,
				CompletedAt:    step.CompletedAt,
				UpdatedAt:      now,
				StepTemplate:   &tmpl,
			})
		}
		out = append(out, js)
	}
	return out
}

// InitialPhotos creates one photo requirement per photo type.
func InitialPhotos(jobID string, photoTypes []entities.PhotoType, newID func() string) []entities.JobPhoto {
	types := append([]entities.PhotoType(nil), photoTypes...)
	sort.SliceStable(types, func(i, j int) bool { return types[i].OrderIndex < types[j].OrderIndex })

	out := make([]entities.JobPhoto, 0, len(types))
	for _, pt := range types {
		out = append(out, entities.JobPhoto{
			ID:          newID(),
			JobID:       jobID,
			PhotoTypeID: pt.ID,
			OrderIndex:  pt.OrderIndex,
			IsRequired:  pt.IsRequired,
			PhotoType:   &pt,
		})
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
