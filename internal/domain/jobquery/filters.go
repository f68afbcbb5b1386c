package jobquery

import (
	"strings"
	"time"

	"oficina_jobs/internal/domain/entities"
)

// DateLayout is the calendar-date format of the start date range bounds.
const DateLayout = "2006-01-02"

// Filters are the optional, AND-combined listing filters. Empty fields are
// inactive.
type Filters struct {
	Registration       string
	CustomerName       string
	ChassisNumber      string
	VINNumber          string
	JobNumber          string
	InsuranceCompanyID string
	Status             entities.JobStatus
	StartDateFrom      *time.Time
	StartDateTo        *time.Time
	Search             string
}

// Normalize trims every text filter and truncates the date bounds to UTC
// calendar days. Status "all" means no status filter.
func (f Filters) Normalize() Filters {
	f.Registration = strings.TrimSpace(f.Registration)
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.ChassisNumber = strings.TrimSpace(f.ChassisNumber)
	f.VINNumber = strings.TrimSpace(f.VINNumber)
	f.JobNumber = strings.TrimSpace(f.JobNumber)
	f.InsuranceCompanyID = strings.TrimSpace(f.InsuranceCompanyID)
	f.Status = entities.JobStatus(strings.ToUpper(strings.TrimSpace(string(f.Status))))
	if strings.EqualFold(string(f.Status), StatusAll) {
		f.Status = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	if f.StartDateFrom != nil {
		d := day(*f.StartDateFrom)
		f.StartDateFrom = &d
	}
	if f.StartDateTo != nil {
		d := day(*f.StartDateTo)
		f.StartDateTo = &d
	}
	return f
}

// WithoutStatus returns a copy with the status filter cleared, used for the
// facet counts.
func (f Filters) WithoutStatus() Filters {
	f.Status = ""
	return f
}

// Row is one job joined with the vehicle and customer it references.
type Row struct {
	Job      entities.Job
	Vehicle  *entities.Vehicle
	Customer *entities.Customer
}

// Matches reports whether row satisfies every active filter. f must be
// normalized.
func (f Filters) Matches(row Row) bool {
	job := row.Job
	registration, chassis, vin, customerName := "", "", "", ""
	if row.Vehicle != nil {
		registration = row.Vehicle.Registration
		chassis = row.Vehicle.ChassisNumber
		vin = row.Vehicle.VINNumber
	}
	if row.Customer != nil {
		customerName = row.Customer.Name
	}

	if f.Registration != "" && !containsFold(registration, f.Registration) {
		return false
	}
	if f.CustomerName != "" && !containsFold(customerName, f.CustomerName) {
		return false
	}
	if f.ChassisNumber != "" && chassis != f.ChassisNumber {
		return false
	}
	if f.VINNumber != "" && vin != f.VINNumber {
		return false
	}
	if f.JobNumber != "" && !containsFold(job.JobNumber, f.JobNumber) {
		return false
	}
	if f.InsuranceCompanyID != "" && job.InsuranceCompanyID != f.InsuranceCompanyID {
		return false
	}
	if f.Status != "" && job.Status != f.Status {
		return false
	}
	if f.StartDateFrom != nil || f.StartDateTo != nil {
		if job.StartDate == nil {
			return false
		}
		start := day(*job.StartDate)
		if f.StartDateFrom != nil && start.Before(*f.StartDateFrom) {
			return false
		}
		if f.StartDateTo != nil && start.After(*f.StartDateTo) {
			return false
		}
	}
	if f.Search != "" {
		if !containsFold(registration, f.Search) &&
			!containsFold(customerName, f.Search) &&
			!containsFold(chassis, f.Search) &&
			!containsFold(vin, f.Search) &&
			!containsFold(job.JobNumber, f.Search) {
			return false
		}
	}
	return true
}

// ParseDate parses a YYYY-MM-DD bound. Full RFC3339 timestamps are accepted
// and reduced to their calendar day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return day(t), nil
}

func containsFold(value, sub string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(sub))
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
