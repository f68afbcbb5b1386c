package response

import (
	"time"

	"oficina_jobs/internal/domain/entities"
)

type JobPaymentResponse struct {
	ID     string    `json:"id"`
	JobID  string    `json:"jobId"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	MPPayloadRaw string                 `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}

func FromJobPayment(p entities.JobPayment) JobPaymentResponse {
	return JobPaymentResponse{
		ID:           p.ID,
		JobID:        p.JobID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromJobPayments(payments []entities.JobPayment) []JobPaymentResponse {
	out := make([]JobPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromJobPayment(p))
	}
	return out
}
