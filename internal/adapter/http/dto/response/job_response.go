package response

import (
	"time"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/domain/jobquery"
	"oficina_jobs/internal/usecase"
)

// JobListResponse is one page of jobs plus the per-status counts of the
// same query without its status filter.
type JobListResponse struct {
	Data         []entities.Job        `json:"data"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"totalPages"`
	StatusCounts jobquery.StatusCounts `json:"statusCounts"`
}

func FromJobList(l usecase.JobList) JobListResponse {
	data := l.Data
	if data == nil {
		data = []entities.Job{}
	}
	return JobListResponse{
		Data:         data,
		Total:        l.Total,
		Page:         l.Page.Page,
		Limit:        l.Limit,
		TotalPages:   l.TotalPages,
		StatusCounts: l.StatusCounts,
	}
}

type PhotoUploadResponse struct {
	URL        string    `json:"url"`
	StorageKey string    `json:"storageKey"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromPhotoUpload(u usecase.PhotoUpload) PhotoUploadResponse {
	return PhotoUploadResponse{URL: u.URL, StorageKey: u.StorageKey, ExpiresAt: u.ExpiresAt}
}
