package request

import (
	"errors"
	"testing"
)

func TestParseJobPaymentCreateRequest(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		req, err := ParseJobPaymentCreateRequest([]byte("  "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(req.MPPayload) != "{}" {
			t.Fatalf("expected {}, got %s", req.MPPayload)
		}
	})

	t.Run("envelope", func(t *testing.T) {
		req, err := ParseJobPaymentCreateRequest([]byte(`{"amount":150.5,"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Amount != 150.5 {
			t.Fatalf("expected 150.5, got %v", req.Amount)
		}
		if string(req.MPPayload) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", req.MPPayload)
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		req, err := ParseJobPaymentCreateRequest([]byte(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(req.MPPayload) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", req.MPPayload)
		}
	})

	t.Run("null payload", func(t *testing.T) {
		_, err := ParseJobPaymentCreateRequest([]byte(`{"mp_payload":null}`))
		if !errors.Is(err, ErrEmptyMPPayload) {
			t.Fatalf("expected ErrEmptyMPPayload, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseJobPaymentCreateRequest([]byte("{")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non numeric amount", func(t *testing.T) {
		if _, err := ParseJobPaymentCreateRequest([]byte(`{"amount":"ten","mp_payload":{}}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}
