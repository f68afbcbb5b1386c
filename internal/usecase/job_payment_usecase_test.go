package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/domain/entities"
	mock_interfaces "oficina_jobs/internal/usecase/interfaces/mocks"
)

const paymentJobID = "3f1c2a56-8f0e-4d43-9d0b-2b8f1a7c9e01"

func billingJob(pt entities.PaymentType, excess float64) entities.Job {
	return entities.Job{
		ID:          paymentJobID,
		JobNumber:   "JOB-1-0001-abcdef",
		Status:      entities.JobStatusBilling,
		PaymentType: pt,
		ExcessFee:   excess,
	}
}

func TestJobPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil, PaymentConfig{}, nil)
		_, err := uc.CreateAndApprove(context.Background(), "not-a-uuid", 10, json.RawMessage(`{}`))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil, PaymentConfig{}, nil)
		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil, PaymentConfig{}, nil)
		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewJobPaymentUseCase(nil, nil, nil, PaymentConfig{}, nil)
		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_CreateAndApprove_JobChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("job repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(entities.Job{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(entities.Job{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, payload)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job not in billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

		job := billingJob(entities.PaymentTypeCash, 0)
		job.Status = entities.JobStatusRepair
		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(job, nil)

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 10, payload)
		if !errors.Is(err, ErrJobNotInBilling) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrJobNotInBilling, got %v", err)
		}
	})

	t.Run("cash job without amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeCash, 0), nil)

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 0, payload)
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeCash, 0), nil)

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 50, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{AccessToken: "APP_USR-1"}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeCash, 0), nil)

		_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 50, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_CreateAndApprove_Gateway(t *testing.T) {
	t.Run("insurance job charges the excess fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobPaymentUseCase(repo, jobs, gateway, PaymentConfig{AccessToken: "TEST-123"}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeInsurance, 350), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if m["transaction_amount"] != 350.0 {
					t.Fatalf("expected transaction_amount 350, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "JOB-1-0001-abcdef" {
					t.Fatalf("expected external_reference job number, got %v", m["external_reference"])
				}
				payer, _ := m["payer"].(map[string]any)
				if payer["email"] != "test_user_br@testuser.com" {
					t.Fatalf("expected sandbox payer email, got %v", payer["email"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.JobPayment{})).DoAndReturn(
			func(_ context.Context, p entities.JobPayment) (entities.JobPayment, error) {
				if p.ID != "mp-1" || p.JobID != paymentJobID || p.Amount != 350 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.MPPayload["status"] != "approved" {
					t.Fatalf("expected parsed payload, got %v", p.MPPayload)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), paymentJobID, 0, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("expected mp-1, got %s", res.ID)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			msg  string
			want error
		}{
			{`{"status":400,"error":"bad_request"}`, ErrPaymentGatewayBadRequest},
			{`{"status":401,"error":"unauthorized"}`, ErrPaymentGatewayUnauthorized},
			{`{"code":2034,"message":"Invalid users involved"}`, ErrPaymentGatewayInvalidUsers},
			{`{"code":2002,"message":"Customer not found"}`, ErrPaymentGatewayCustomerNotFound},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			jobs := mock_interfaces.NewMockIJobRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewJobPaymentUseCase(nil, jobs, gateway, PaymentConfig{}, nil)

			jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeCash, 0), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.msg))

			_, err := uc.CreateAndApprove(context.Background(), paymentJobID, 80, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobPaymentUseCase(repo, jobs, nil, PaymentConfig{Mock: true}, nil)

		jobs.EXPECT().GetDetails(gomock.Any(), paymentJobID).Return(billingJob(entities.PaymentTypeCash, 0), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.JobPayment) (entities.JobPayment, error) {
				if p.ID == "" || p.Amount != 120 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), paymentJobID, 120, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobPaymentUseCase_Reads(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		uc := NewJobPaymentUseCase(repo, nil, nil, PaymentConfig{}, nil)

		repo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.JobPayment{}, nil)

		_, err := uc.GetByID(context.Background(), " mp-1 ")
		if !errors.Is(err, ErrJobPaymentNotFound) {
			t.Fatalf("expected ErrJobPaymentNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobPaymentRepository(ctrl)
		uc := NewJobPaymentUseCase(repo, nil, nil, PaymentConfig{}, nil)

		older := entities.JobPayment{ID: "a"}
		newer := entities.JobPayment{ID: "b"}
		newer.Date = older.Date.Add(1)
		repo.EXPECT().ListByJobID(gomock.Any(), paymentJobID).Return([]entities.JobPayment{older, newer}, nil)

		res, err := uc.ListByJobID(context.Background(), paymentJobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "b" {
			t.Fatalf("expected newest first, got %+v", res)
		}
	})
}
