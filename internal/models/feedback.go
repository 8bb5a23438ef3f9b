package models

import "time"

type Feedback struct {
	ID            uint   `gorm:"primaryKey" json:"feedback_id"`
	AppointmentID uint   `gorm:"not null" json:"appointment_id"`
	CustomerID    uint   `gorm:"not null" json:"customer_id"`
	Rating        int    `json:"rating"`
	Comments      string `gorm:"type:text" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
