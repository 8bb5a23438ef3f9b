package handlers

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

// ======================================================
// CUSTOMER
// ======================================================

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) toModel() (*models.Customer, error) {
	return &models.Customer{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:   strings.TrimSpace(r.Phone),
		Address: r.Address,
	}, nil
}

// ======================================================
// VEHICLE
// ======================================================

type VehicleRequest struct {
	CustomerID   uint   `json:"customer_id" binding:"required"`
	ModelYear    string `json:"model_year" binding:"max=4"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (r VehicleRequest) toModel() (*models.Vehicle, error) {
	return newVehicle(r.CustomerID, r.ModelYear, r.LicensePlate)
}

// CustomerVehicleRequest é o corpo de /customers/:id/vehicles; o dono
// vem da rota.
type CustomerVehicleRequest struct {
	ModelYear    string `json:"model_year" binding:"max=4"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (r CustomerVehicleRequest) toModel(customerID uint) (*models.Vehicle, error) {
	return newVehicle(customerID, r.ModelYear, r.LicensePlate)
}

func newVehicle(customerID uint, modelYear, plate string) (*models.Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, errors.New("license_plate must not be blank")
	}
	return &models.Vehicle{
		CustomerID:   customerID,
		ModelYear:    strings.TrimSpace(modelYear),
		LicensePlate: plate,
	}, nil
}

// ======================================================
// SERVICE PACKAGE
// ======================================================

type ServicePackageRequest struct {
	PackageName        string          `json:"package_name" binding:"required"`
	PackageDescription string          `json:"package_description"`
	Price              decimal.Decimal `json:"price"`
	Duration           int             `json:"duration" binding:"min=0"`
}

func (r ServicePackageRequest) toModel() (*models.ServicePackage, error) {
	if r.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	return &models.ServicePackage{
		Name:        strings.TrimSpace(r.PackageName),
		Description: r.PackageDescription,
		Price:       r.Price.Round(2),
		DurationMin: r.Duration,
	}, nil
}

// ======================================================
// EMPLOYEE
// ======================================================

type EmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    string  `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

func (r EmployeeRequest) toModel() (*models.Employee, error) {
	e := &models.Employee{
		Name:     strings.TrimSpace(r.Name),
		Phone:    strings.TrimSpace(r.Phone),
		IsActive: true,
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		e.Email = &email
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	return e, nil
}

// ======================================================
// INVENTORY
// ======================================================

type InventoryRequest struct {
	ProductName  string `json:"product_name" binding:"required"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level" binding:"min=0"`
}

func (r InventoryRequest) toModel() (*models.Inventory, error) {
	return &models.Inventory{
		ProductName:  strings.TrimSpace(r.ProductName),
		Quantity:     r.Quantity,
		ReorderLevel: r.ReorderLevel,
	}, nil
}

// ======================================================
// FEEDBACK
// ======================================================

type FeedbackRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	CustomerID    uint   `json:"customer_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comments      string `json:"comments"`
}

func (r FeedbackRequest) toModel() (*models.Feedback, error) {
	return &models.Feedback{
		AppointmentID: r.AppointmentID,
		CustomerID:    r.CustomerID,
		Rating:        r.Rating,
		Comments:      r.Comments,
	}, nil
}
