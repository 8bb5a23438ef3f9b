package models

import "time"

// ServiceRecord é o trabalho efetivamente executado num agendamento.
type ServiceRecord struct {
	ID            uint  `gorm:"primaryKey" json:"service_record_id"`
	AppointmentID uint  `gorm:"not null" json:"appointment_id"`
	EmployeeID    *uint `json:"employee_id"`

	Details     string `gorm:"type:text" json:"details"`
	DurationMin int    `gorm:"column:duration" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
}

// ServiceRecordInventory registra as peças consumidas por um ServiceRecord.
type ServiceRecordInventory struct {
	ServiceRecordID uint `gorm:"primaryKey;autoIncrement:false" json:"service_record_id"`
	InventoryID     uint `gorm:"primaryKey;autoIncrement:false" json:"inventory_id"`
	QuantityUsed    int  `gorm:"not null" json:"quantity_used"`
}

func (ServiceRecordInventory) TableName() string {
	return "service_record_inventory"
}
