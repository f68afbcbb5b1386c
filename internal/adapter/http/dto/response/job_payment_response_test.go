package response

import (
	"encoding/json"
	"testing"
	"time"

	"oficina_jobs/internal/domain/entities"
)

func TestFromJobPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.JobPayment{
		ID:           "pay-1",
		JobID:        "job-1",
		Amount:       320.5,
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromJobPayment(p)
	if res.ID != "pay-1" || res.JobID != "job-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 320.5 || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}

func TestFromJobPayments_EmptyIsNotNil(t *testing.T) {
	res := FromJobPayments(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %#v", res)
	}
}
