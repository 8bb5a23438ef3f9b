package appointment

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

type Repository interface {
	// -------- Scheduling --------

	// ScheduleAppointment grava agendamento, registro de serviço e consumo
	// de estoque numa única transação. Falha em qualquer etapa desfaz tudo
	// e devolve *ScheduleError.
	ScheduleAppointment(
		ctx context.Context,
		in ScheduleInput,
	) (*ScheduleResult, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
