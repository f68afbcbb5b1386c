package entities

import "time"

type EmployeeRole string

const (
	EmployeeRoleAdmin        EmployeeRole = "admin"
	EmployeeRoleManager      EmployeeRole = "manager"
	EmployeeRoleTechnician   EmployeeRole = "technician"
	EmployeeRoleReceptionist EmployeeRole = "receptionist"
)

func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleAdmin, EmployeeRoleManager, EmployeeRoleTechnician, EmployeeRoleReceptionist:
		return true
	}
	return false
}

// Employee is a shop user. PasswordHash never leaves the service.
type Employee struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Role         EmployeeRole `json:"role"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
