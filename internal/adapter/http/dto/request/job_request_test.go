package request

import (
	"testing"
	"time"

	"oficina_jobs/pkg/api"
)

func TestCreateJobRequest_ToInput(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req := CreateJobRequest{
		Vehicle:            &VehicleRef{Registration: "abc1d23", Brand: "Fiat", Year: 2020},
		Customer:           &CustomerRef{Name: "Maria", Phone: "11999990000"},
		InsuranceCompanyID: " ins-1 ",
		PaymentType:        "Insurance",
		ExcessFee:          500,
		StartDate:          &start,
	}

	in := req.ToInput()
	if in.Vehicle == nil || in.Vehicle.Registration != "abc1d23" || in.Vehicle.Year != 2020 {
		t.Fatalf("unexpected vehicle: %+v", in.Vehicle)
	}
	if in.Customer == nil || in.Customer.Name != "Maria" {
		t.Fatalf("unexpected customer: %+v", in.Customer)
	}
	if in.InsuranceCompanyID != "ins-1" {
		t.Fatalf("expected trimmed insurance id, got %q", in.InsuranceCompanyID)
	}
	if in.ExcessFee != 500 || in.PaymentType != "Insurance" {
		t.Fatalf("unexpected fields: %+v", in)
	}
	if in.StartDate == nil || !in.StartDate.Equal(start) {
		t.Fatalf("unexpected start date: %v", in.StartDate)
	}
}

func TestCreateJobRequest_ToInputByID(t *testing.T) {
	in := CreateJobRequest{VehicleID: "veh-1", CustomerID: "cus-1"}.ToInput()
	if in.Vehicle != nil || in.Customer != nil {
		t.Fatalf("expected no inline refs, got %+v", in)
	}
	if in.VehicleID != "veh-1" || in.CustomerID != "cus-1" {
		t.Fatalf("unexpected ids: %+v", in)
	}
}

func TestListJobsQuery_ToInput(t *testing.T) {
	page := api.PageRequest{Page: 2, Limit: 5}

	t.Run("aliases", func(t *testing.T) {
		in := ListJobsQuery{Registration: "ABC", Customer: "ana", Chassis: "9BW", VIN: "1HG"}.ToInput(page)
		if in.Registration != "ABC" || in.CustomerName != "ana" || in.ChassisNumber != "9BW" || in.VINNumber != "1HG" {
			t.Fatalf("aliases not resolved: %+v", in)
		}
		if in.Page != page {
			t.Fatalf("expected page %+v, got %+v", page, in.Page)
		}
	})

	t.Run("long name wins", func(t *testing.T) {
		in := ListJobsQuery{VehicleRegistration: "LONG", Registration: "SHORT"}.ToInput(page)
		if in.Registration != "LONG" {
			t.Fatalf("expected LONG, got %q", in.Registration)
		}
	})

	t.Run("blank long name falls back", func(t *testing.T) {
		in := ListJobsQuery{CustomerName: "  ", Customer: "joao"}.ToInput(page)
		if in.CustomerName != "joao" {
			t.Fatalf("expected joao, got %q", in.CustomerName)
		}
	})
}
