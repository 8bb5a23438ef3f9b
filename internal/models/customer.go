package models

import "time"

type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"customer_id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
