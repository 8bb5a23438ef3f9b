package appointment

import (
	"fmt"
	"time"
)

// Etapas da transação de agendamento, usadas em ScheduleError.
const (
	StepCreateAppointment   = "create_appointment"
	StepCreateServiceRecord = "create_service_record"
	StepConsumeInventory    = "consume_inventory"
	StepCommit              = "commit"
)

type InventoryItem struct {
	InventoryID uint
	Quantity    int
}

// ScheduleInput já validado: data e hora parseadas.
//
// CustomerID vem do formulário e só é registrado na auditoria; o dono do
// veículo não é conferido.
type ScheduleInput struct {
	CustomerID       uint
	VehicleID        uint
	ServicePackageID uint
	EmployeeID       uint

	Date time.Time
	Time string

	ServiceDetails  string
	ServiceDuration int

	Items []InventoryItem
}

type ScheduleResult struct {
	AppointmentID   uint
	ServiceRecordID uint
	ItemsConsumed   int
}

// ScheduleError indica que a transação foi desfeita por inteiro.
type ScheduleError struct {
	Step        string
	InventoryID uint
	Err         error
}

func (e *ScheduleError) Error() string {
	if e.Step == StepConsumeInventory {
		return fmt.Sprintf("schedule appointment: %s (inventory %d): %v", e.Step, e.InventoryID, e.Err)
	}
	return fmt.Sprintf("schedule appointment: %s: %v", e.Step, e.Err)
}

func (e *ScheduleError) Unwrap() error {
	return e.Err
}
