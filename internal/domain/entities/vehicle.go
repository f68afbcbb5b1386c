package entities

import "time"

// Vehicle is identified for deduplication by its registration (plate).
type Vehicle struct {
	ID            string    `json:"id"`
	Registration  string    `json:"registration"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	Type          string    `json:"type,omitempty"`
	Color         string    `json:"color,omitempty"`
	Year          int       `json:"year,omitempty"`
	ChassisNumber string    `json:"chassisNumber,omitempty"`
	VINNumber     string    `json:"vinNumber,omitempty"`
	CustomerID    string    `json:"customerId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type VehicleBrand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VehicleModel struct {
	ID      string `json:"id"`
	BrandID string `json:"brandId"`
	Name    string `json:"name"`
}

type VehicleType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VehicleCatalog holds the reference brand/model/type lists.
type VehicleCatalog struct {
	Brands []VehicleBrand `json:"brands"`
	Models []VehicleModel `json:"models"`
	Types  []VehicleType  `json:"types"`
}
