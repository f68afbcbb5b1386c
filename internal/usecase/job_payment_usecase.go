package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

var (
	ErrJobPaymentNotFound             = fmt.Errorf("job payment %w", ErrNotFound)
	ErrInvalidMPPayload               = fmt.Errorf("%w: invalid mercado pago payload", ErrValidation)
	ErrInvalidPaymentAmount           = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrJobNotInBilling                = fmt.Errorf("%w: job is not in the billing stage", ErrConflict)
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentConfig controls how charges reach Mercado Pago. With Mock set no
// external call is made and the payment is approved locally.
type PaymentConfig struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (c PaymentConfig) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

// IJobPaymentUseCase charges the customer of a job in the billing stage.
type IJobPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, jobID string, amount float64, mpPayload json.RawMessage) (entities.JobPayment, error)
	GetByID(ctx context.Context, id string) (entities.JobPayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.JobPayment, error)
}

type JobPaymentUseCase struct {
	repo    interfaces.IJobPaymentRepository
	jobs    interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
	cfg     PaymentConfig
	log     *zap.Logger
}

var _ IJobPaymentUseCase = (*JobPaymentUseCase)(nil)

func NewJobPaymentUseCase(repo interfaces.IJobPaymentRepository, jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway, cfg PaymentConfig, log *zap.Logger) *JobPaymentUseCase {
	return &JobPaymentUseCase{repo: repo, jobs: jobs, gateway: gateway, cfg: cfg, log: logger.OrNop(log)}
}

// CreateAndApprove charges a job. Insurance jobs are charged their excess
// fee; cash jobs are charged amount, which must be positive.
func (u *JobPaymentUseCase) CreateAndApprove(ctx context.Context, jobID string, amount float64, mpPayload json.RawMessage) (entities.JobPayment, error) {
	u.log.Info("[payment][usecase] create-and-approve start", zap.String("raw_job_id", jobID), zap.Int("payload_len", len(mpPayload)))
	mockMode := u.cfg.Mock

	jobID, err := parseID(jobID, "job id")
	if err != nil {
		return entities.JobPayment{}, err
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Info("[payment][usecase] invalid payload", zap.String("job_id", jobID))
			return entities.JobPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.log.Error("[payment][usecase] gateway not configured", zap.String("job_id", jobID))
		return entities.JobPayment{}, fmt.Errorf("%w: payment gateway not configured", ErrUnavailable)
	}

	job, err := u.jobs.GetDetails(ctx, jobID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading job", zap.String("job_id", jobID), zap.Error(err))
		return entities.JobPayment{}, err
	}
	if job.ID == "" {
		return entities.JobPayment{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusBilling {
		u.log.Info("[payment][usecase] job not in billing", zap.String("job_id", jobID), zap.String("status", string(job.Status)))
		return entities.JobPayment{}, ErrJobNotInBilling
	}

	charge := amount
	if job.PaymentType == entities.PaymentTypeInsurance {
		charge = job.ExcessFee
	}
	if charge <= 0 {
		return entities.JobPayment{}, ErrInvalidPaymentAmount
	}
	u.log.Info("[payment][usecase] job loaded",
		zap.String("job_id", jobID),
		zap.String("payment_type", string(job.PaymentType)),
		zap.Float64("amount", charge))

	// Link the payment to the job so Mercado Pago events can be reconciled.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Info("[payment][usecase] missing payment_method_id", zap.String("job_id", jobID))
			return entities.JobPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			u.log.Info("[payment][usecase] missing/invalid payer", zap.String("job_id", jobID))
			return entities.JobPayment{}, ErrInvalidMPPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = job.JobNumber
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Job %s", job.JobNumber)
		}
		// The job is the source of truth for the amount.
		reqMap["transaction_amount"] = charge
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		u.log.Info("[payment][usecase] payload unmarshal failed", zap.String("job_id", jobID), zap.Error(err))
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		u.log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway", zap.String("job_id", jobID))
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(mpPayload, job, charge)
		if err != nil {
			return entities.JobPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.log.Error("[payment][usecase] payment gateway failed", zap.String("job_id", jobID), zap.Error(err))
			return entities.JobPayment{}, classifyGatewayError(err)
		}
	}
	u.log.Info("[payment][usecase] payment gateway success",
		zap.String("job_id", jobID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Info("[payment][usecase] provider response unmarshal failed", zap.String("job_id", jobID), zap.Error(err))
	}

	p := entities.JobPayment{
		ID:           providerPaymentID,
		JobID:        jobID,
		Amount:       charge,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] payment repository create failed", zap.String("job_id", jobID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.JobPayment{}, err
	}
	u.log.Info("[payment][usecase] create-and-approve success", zap.String("job_id", jobID), zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func mockProviderResponse(payload json.RawMessage, job entities.Job, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = job.JobNumber
	}
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *JobPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.cfg.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.cfg.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *JobPaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.cfg.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.cfg.TestPayerUserID)
	email := strings.TrimSpace(u.cfg.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.log.Info("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *JobPaymentUseCase) GetByID(ctx context.Context, id string) (entities.JobPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobPayment{}, validationf("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobPayment{}, err
	}
	if p.ID == "" {
		return entities.JobPayment{}, ErrJobPaymentNotFound
	}
	return p, nil
}

// ListByJobID returns the payments of a job, newest first.
func (u *JobPaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.JobPayment, error) {
	jobID, err := parseID(jobID, "job id")
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}
