package entities

import (
	"strings"
	"time"
)

// JobStatus is a denormalized summary of where a job is in the workflow.
type JobStatus string

const (
	JobStatusClaim   JobStatus = "CLAIM"
	JobStatusRepair  JobStatus = "REPAIR"
	JobStatusBilling JobStatus = "BILLING"
	JobStatusDone    JobStatus = "DONE"
)

// JobStatuses lists every status in workflow order.
var JobStatuses = []JobStatus{JobStatusClaim, JobStatusRepair, JobStatusBilling, JobStatusDone}

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusClaim, JobStatusRepair, JobStatusBilling, JobStatusDone:
		return true
	}
	return false
}

// JobStatusForStage maps a stage code ("repair") to the matching job status.
func JobStatusForStage(code string) (JobStatus, bool) {
	s := JobStatus(strings.ToUpper(strings.TrimSpace(code)))
	if !s.IsValid() || s == JobStatusDone {
		return "", false
	}
	return s, true
}

type PaymentType string

const (
	PaymentTypeInsurance PaymentType = "Insurance"
	PaymentTypeCash      PaymentType = "Cash"
)

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeInsurance, PaymentTypeCash:
		return true
	}
	return false
}

// Job is the workflow instance root.
//
// Invariant: IsFinished == (Status == DONE) == (ActualEndDate != nil).
type Job struct {
	ID                 string      `json:"id"`
	JobNumber          string      `json:"jobNumber"`
	VehicleID          string      `json:"vehicleId"`
	CustomerID         string      `json:"customerId"`
	ReceiverID         string      `json:"receiverId,omitempty"`
	InsuranceCompanyID string      `json:"insuranceCompanyId,omitempty"`
	Status             JobStatus   `json:"status"`
	PaymentType        PaymentType `json:"paymentType"`
	ExcessFee          float64     `json:"excessFee"`
	StartDate          *time.Time  `json:"startDate,omitempty"`
	EstimatedEndDate   *time.Time  `json:"estimatedEndDate,omitempty"`
	ActualEndDate      *time.Time  `json:"actualEndDate,omitempty"`
	RepairDescription  string      `json:"repairDescription,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	CurrentStageIndex  int         `json:"currentStageIndex"`
	IsFinished         bool        `json:"isFinished"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`

	Vehicle          *Vehicle          `json:"vehicle,omitempty"`
	Customer         *Customer         `json:"customer,omitempty"`
	InsuranceCompany *InsuranceCompany `json:"insuranceCompany,omitempty"`
	Stages           []JobStage        `json:"jobStages,omitempty"`
	Photos           []JobPhoto        `json:"jobPhotos,omitempty"`
}

// MarkFinished moves the job to DONE keeping the finished invariant.
func (j *Job) MarkFinished(now time.Time) {
	j.Status = JobStatusDone
	j.IsFinished = true
	j.ActualEndDate = &now
}
