package dto

import (
	"time"

	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

// AppointmentDTO formata data e hora como o painel espera (YYYY-MM-DD, HH:MM).
type AppointmentDTO struct {
	AppointmentID    uint       `json:"appointment_id"`
	VehicleID        uint       `json:"vehicle_id"`
	ServicePackageID *uint      `json:"service_package_id"`
	AppointmentDate  string     `json:"appointment_date"`
	AppointmentTime  string     `json:"appointment_time"`
	Status           string     `json:"status"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	hm := ap.AppointmentTime
	if parsed, err := timezone.ParseTime(hm); err == nil {
		hm = parsed
	}

	return AppointmentDTO{
		AppointmentID:    ap.ID,
		VehicleID:        ap.VehicleID,
		ServicePackageID: ap.ServicePackageID,
		AppointmentDate:  ap.AppointmentDate.Format(timezone.DateLayout),
		AppointmentTime:  hm,
		Status:           ap.Status,
		CancelledAt:      ap.CancelledAt,
		CompletedAt:      ap.CompletedAt,
	}
}

type ScheduleAppointmentResponse struct {
	Message         string `json:"message"`
	AppointmentID   uint   `json:"appointment_id"`
	ServiceRecordID uint   `json:"service_record_id"`
	ItemsConsumed   int    `json:"items_consumed"`
}
