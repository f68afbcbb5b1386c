package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/adapter/http/handlers/mocks"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIJobPaymentUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIJobPaymentUseCase(ctrl)
	h := NewJobPaymentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/jobs/:id/payments", h.CreatePayment)
	r.GET("/v1/jobs/:id/payments", h.ListPayments)
	r.GET("/v1/payments/:paymentId", h.GetPayment)
	return r, uc
}

func TestJobPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not in billing", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", 0.0, gomock.Any()).Return(entities.JobPayment{}, usecase.ErrJobNotInBilling)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/payments", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "missing", gomock.Any(), gomock.Any()).Return(entities.JobPayment{}, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodPost, "/v1/jobs/missing/payments", `{}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("cash without amount", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", 0.0, gomock.Any()).Return(entities.JobPayment{}, usecase.ErrInvalidPaymentAmount)

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/payments", `{"mp_payload":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		}
		for _, tc := range cases {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).Return(entities.JobPayment{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/payments", `{}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
		}
	})

	t.Run("success with envelope", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", 250.0, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ float64, payload json.RawMessage) (entities.JobPayment, error) {
				if !bytes.Equal(payload, []byte(`{"payment_method_id":"pix"}`)) {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.JobPayment{ID: "pay-1", JobID: "job-1", Amount: 250, Date: now, Status: entities.PaymentStatusApproved}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/jobs/job-1/payments", `{"amount":250,"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["id"] != "pay-1" || body["jobId"] != "job-1" || body["status"] != "approved" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestJobPaymentHandler_ListPayments(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/jobs/job-1/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("job not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListByJobID(gomock.Any(), "missing").Return(nil, usecase.ErrJobNotFound)

		w := doJSON(r, http.MethodGet, "/v1/jobs/missing/payments", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobPaymentHandler_GetPayment(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.JobPayment{}, usecase.ErrJobPaymentNotFound)

	w := doJSON(r, http.MethodGet, "/v1/payments/pay-x", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
