package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"appointment_id"`

	VehicleID uint `gorm:"not null" json:"vehicle_id"`

	// nil quando o pacote foi apagado (ON DELETE SET NULL)
	ServicePackageID *uint `json:"service_package_id"`

	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:time;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
