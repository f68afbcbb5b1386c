package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Status      string `binding:"jobstatus"`
	PaymentType string `binding:"paymenttype"`
	StepStatus  string `binding:"stepstatus"`
	Role        string `binding:"employeerole"`
}

func TestRegister(t *testing.T) {
	Register()
	Register()

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"empty values pass", sample{}, false},
		{"valid values", sample{Status: "repair", PaymentType: "Cash", StepStatus: "in_progress", Role: "Technician"}, false},
		{"bad job status", sample{Status: "ARCHIVED"}, true},
		{"bad payment type", sample{PaymentType: "cash"}, true},
		{"bad step status", sample{StepStatus: "done"}, true},
		{"bad role", sample{Role: "owner"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegister_ReportsJSONFieldNames(t *testing.T) {
	Register()

	type payload struct {
		Status string `json:"status" binding:"required,stepstatus"`
	}
	err := binding.Validator.ValidateStruct(payload{Status: "done"})

	var verrs validator.ValidationErrors
	if assert.ErrorAs(t, err, &verrs) {
		assert.Equal(t, "status", verrs[0].Field())
		assert.Equal(t, "stepstatus", verrs[0].Tag())
	}
}
