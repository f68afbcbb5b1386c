package request

import (
	"strings"
	"time"

	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/api"
)

// VehicleRef is an inline vehicle, resolved by registration.
type VehicleRef struct {
	Registration  string `json:"registration" binding:"required"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Type          string `json:"type"`
	Color         string `json:"color"`
	Year          int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	ChassisNumber string `json:"chassisNumber"`
	VINNumber     string `json:"vinNumber"`
}

// CustomerRef is an inline customer, resolved by name and phone.
type CustomerRef struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// CreateJobRequest opens a job. Either vehicleId or vehicle must be set, and
// either customerId or customer.
type CreateJobRequest struct {
	VehicleID          string       `json:"vehicleId"`
	Vehicle            *VehicleRef  `json:"vehicle"`
	CustomerID         string       `json:"customerId"`
	Customer           *CustomerRef `json:"customer"`
	ReceiverID         string       `json:"receiverId"`
	InsuranceCompanyID string       `json:"insuranceCompanyId"`
	JobNumber          string       `json:"jobNumber"`
	Status             string       `json:"status" binding:"omitempty,jobstatus"`
	PaymentType        string       `json:"paymentType" binding:"omitempty,paymenttype"`
	ExcessFee          float64      `json:"excessFee" binding:"gte=0"`
	RepairDescription  string       `json:"repairDescription"`
	Notes              string       `json:"notes"`
	StartDate          *time.Time   `json:"startDate"`
	EstimatedEndDate   *time.Time   `json:"estimatedEndDate"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	in := usecase.CreateJobInput{
		VehicleID:          strings.TrimSpace(r.VehicleID),
		CustomerID:         strings.TrimSpace(r.CustomerID),
		ReceiverID:         strings.TrimSpace(r.ReceiverID),
		InsuranceCompanyID: strings.TrimSpace(r.InsuranceCompanyID),
		JobNumber:          strings.TrimSpace(r.JobNumber),
		Status:             r.Status,
		PaymentType:        r.PaymentType,
		ExcessFee:          r.ExcessFee,
		RepairDescription:  r.RepairDescription,
		Notes:              r.Notes,
		StartDate:          r.StartDate,
		EstimatedEndDate:   r.EstimatedEndDate,
	}
	if r.Vehicle != nil {
		in.Vehicle = &usecase.VehicleInput{
			Registration:  r.Vehicle.Registration,
			Brand:         r.Vehicle.Brand,
			Model:         r.Vehicle.Model,
			Type:          r.Vehicle.Type,
			Color:         r.Vehicle.Color,
			Year:          r.Vehicle.Year,
			ChassisNumber: r.Vehicle.ChassisNumber,
			VINNumber:     r.Vehicle.VINNumber,
		}
	}
	if r.Customer != nil {
		in.Customer = &usecase.CustomerInput{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Email:   r.Customer.Email,
			Address: r.Customer.Address,
		}
	}
	return in
}

type UpdateStepStatusRequest struct {
	Status     string `json:"status" binding:"required,stepstatus"`
	EmployeeID string `json:"employeeId"`
}

type UpdatePhotoRequest struct {
	IsCompleted *bool  `json:"isCompleted" binding:"required"`
	StorageKey  string `json:"storageKey"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType"`
}

// ListJobsQuery is the query string of the job listing. Several filters
// accept a short alias; the long name wins when both are present.
type ListJobsQuery struct {
	Status              string `form:"status"`
	Search              string `form:"search"`
	VehicleRegistration string `form:"vehicleRegistration"`
	Registration        string `form:"registration"`
	CustomerName        string `form:"customerName"`
	Customer            string `form:"customer"`
	ChassisNumber       string `form:"chassisNumber"`
	Chassis             string `form:"chassis"`
	VINNumber           string `form:"vinNumber"`
	VIN                 string `form:"vin"`
	JobNumber           string `form:"jobNumber"`
	InsuranceCompanyID  string `form:"insuranceCompanyId"`
	StartDateFrom       string `form:"startDateFrom"`
	StartDateTo         string `form:"startDateTo"`
	SortBy              string `form:"sortBy"`
	SortOrder           string `form:"sortOrder"`
}

func (q ListJobsQuery) ToInput(page api.PageRequest) usecase.ListJobsInput {
	return usecase.ListJobsInput{
		Status:             q.Status,
		Search:             q.Search,
		Registration:       firstNonEmpty(q.VehicleRegistration, q.Registration),
		CustomerName:       firstNonEmpty(q.CustomerName, q.Customer),
		ChassisNumber:      firstNonEmpty(q.ChassisNumber, q.Chassis),
		VINNumber:          firstNonEmpty(q.VINNumber, q.VIN),
		JobNumber:          q.JobNumber,
		InsuranceCompanyID: q.InsuranceCompanyID,
		StartDateFrom:      q.StartDateFrom,
		StartDateTo:        q.StartDateTo,
		SortBy:             q.SortBy,
		SortOrder:          q.SortOrder,
		Page:               page,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
