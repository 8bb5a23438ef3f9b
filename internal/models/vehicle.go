package models

import "time"

// Vehicle pertence a um único cliente; apagar o cliente apaga o veículo.
type Vehicle struct {
	ID           uint   `gorm:"primaryKey" json:"vehicle_id"`
	CustomerID   uint   `gorm:"not null" json:"customer_id"`
	ModelYear    string `gorm:"size:4" json:"model_year"`
	LicensePlate string `gorm:"size:255;uniqueIndex;not null" json:"license_plate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
