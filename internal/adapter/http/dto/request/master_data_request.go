package request

import "oficina_jobs/internal/usecase"

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{Name: r.Name, Phone: r.Phone, Email: r.Email, Address: r.Address}
}

type VehicleRequest struct {
	CustomerID    string `json:"customerId"`
	Registration  string `json:"registration" binding:"required"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Type          string `json:"type"`
	Color         string `json:"color"`
	Year          int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	ChassisNumber string `json:"chassisNumber"`
	VINNumber     string `json:"vinNumber"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		CustomerID:    r.CustomerID,
		Registration:  r.Registration,
		Brand:         r.Brand,
		Model:         r.Model,
		Type:          r.Type,
		Color:         r.Color,
		Year:          r.Year,
		ChassisNumber: r.ChassisNumber,
		VINNumber:     r.VINNumber,
	}
}

// EmployeeRequest is shared by create and update. Password is required on
// create only; an empty password on update keeps the current one.
type EmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required,employeerole"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsActive *bool  `json:"isActive"`
}

func (r EmployeeRequest) ToInput() usecase.EmployeeInput {
	return usecase.EmployeeInput{
		Name:     r.Name,
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		Phone:    r.Phone,
		Email:    r.Email,
		IsActive: r.IsActive,
	}
}

type InsuranceCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	ContactName string `json:"contactName"`
}

func (r InsuranceCompanyRequest) ToInput() usecase.InsuranceCompanyInput {
	return usecase.InsuranceCompanyInput{Name: r.Name, Phone: r.Phone, Email: r.Email, ContactName: r.ContactName}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
