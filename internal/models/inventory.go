package models

import "time"

type Inventory struct {
	ID           uint   `gorm:"primaryKey" json:"inventory_id"`
	ProductName  string `gorm:"size:255;not null" json:"product_name"`
	Quantity     int    `gorm:"not null" json:"quantity"`
	ReorderLevel int    `gorm:"not null" json:"reorder_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// IsLow indica estoque abaixo do ponto de reposição.
func (i Inventory) IsLow() bool {
	return i.Quantity < i.ReorderLevel
}
