package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServicePackage struct {
	ID          uint            `gorm:"primaryKey" json:"service_package_id"`
	Name        string          `gorm:"column:package_name;size:255;not null" json:"package_name"`
	Description string          `gorm:"column:package_description;type:text" json:"package_description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMin int             `gorm:"column:duration;not null" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
