package entities

import "time"

// JobStage is the per-job instance of a Stage. One exists for every
// (job, stage) pair from the moment the job is created.
type JobStage struct {
	ID              string     `json:"id"`
	JobID           string     `json:"jobId"`
	StageID         string     `json:"stageId"`
	StageOrderIndex int        `json:"stageOrderIndex"`
	IsLocked        bool       `json:"isLocked"`
	IsCompleted     bool       `json:"isCompleted"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`

	Stage *Stage    `json:"stage,omitempty"`
	Steps []JobStep `json:"jobSteps"`
}

// IsCurrent reports whether this is the active stage of its job.
func (s JobStage) IsCurrent() bool {
	return !s.IsLocked && !s.IsCompleted
}
