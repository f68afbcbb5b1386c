package entities

import "time"

type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
	StepStatusSkipped    StepStatus = "skipped"
)

func (s StepStatus) IsValid() bool {
	switch s {
	case StepStatusPending, StepStatusInProgress, StepStatusCompleted, StepStatusSkipped:
		return true
	}
	return false
}

// IsResolved reports whether the step no longer blocks its stage.
func (s StepStatus) IsResolved() bool {
	return s == StepStatusCompleted || s == StepStatusSkipped
}

// JobStep is the per-job instance of a StepTemplate.
type JobStep struct {
	ID             string     `json:"id"`
	JobID          string     `json:"jobId"`
	JobStageID     string     `json:"jobStageId"`
	StepTemplateID string     `json:"stepTemplateId"`
	StepOrderIndex int        `json:"stepOrderIndex"`
	Status         StepStatus `json:"status"`
	EmployeeID     string     `json:"employeeId,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	StepTemplate *StepTemplate `json:"stepTemplate,omitempty"`
}
