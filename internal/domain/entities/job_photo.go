package entities

import "time"

// JobPhoto tracks one photo requirement of a job.
type JobPhoto struct {
	ID          string     `json:"id"`
	JobID       string     `json:"jobId"`
	PhotoTypeID string     `json:"photoTypeId"`
	OrderIndex  int        `json:"orderIndex"`
	IsRequired  bool       `json:"isRequired"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	StorageKey  string     `json:"storageKey,omitempty"`

	PhotoType *PhotoType `json:"photoType,omitempty"`
}
