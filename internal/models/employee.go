package models

import "time"

type Employee struct {
	ID       uint    `gorm:"primaryKey" json:"employee_id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Email    *string `gorm:"size:255;uniqueIndex" json:"email"`
	Phone    string  `gorm:"size:20" json:"phone"`
	IsActive bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
