package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// JobPaymentCreateRequest is the payload of the job charge route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas. `amount` is only read for cash jobs.
type JobPaymentCreateRequest struct {
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseJobPaymentCreateRequest accepts either the envelope above or a bare
// Mercado Pago payload. An empty body yields an empty payload.
func ParseJobPaymentCreateRequest(raw []byte) (JobPaymentCreateRequest, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return JobPaymentCreateRequest{MPPayload: json.RawMessage("{}")}, nil
	}
	if !json.Valid(raw) {
		return JobPaymentCreateRequest{}, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return JobPaymentCreateRequest{}, errors.New("request body must be a json object")
	}

	var req JobPaymentCreateRequest
	if amount, ok := envelope["amount"]; ok {
		if err := json.Unmarshal(amount, &req.Amount); err != nil {
			return JobPaymentCreateRequest{}, errors.New("amount must be a number")
		}
	}
	wrapped, ok := envelope["mp_payload"]
	if !ok {
		req.MPPayload = json.RawMessage(raw)
		return req, nil
	}
	if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
		return JobPaymentCreateRequest{}, ErrEmptyMPPayload
	}
	req.MPPayload = wrapped
	return req, nil
}
