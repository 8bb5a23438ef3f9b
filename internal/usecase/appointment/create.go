package appointment

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

type CreateAppointmentInput struct {
	VehicleID        uint
	ServicePackageID uint

	Date string
	Time string
}

// CreateAppointment é o agendamento simples, sem registro de serviço
// nem consumo de estoque.
type CreateAppointment struct {
	repo       domain.Repository
	audit      Auditor
	invalidate Invalidate
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Auditor,
	invalidate Invalidate,
) *CreateAppointment {
	if invalidate == nil {
		invalidate = noInvalidate
	}
	return &CreateAppointment{
		repo:       repo,
		audit:      audit,
		invalidate: invalidate,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	hhmm, err := timezone.ParseTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	ap := &models.Appointment{
		VehicleID:       in.VehicleID,
		AppointmentDate: date,
		AppointmentTime: hhmm,
		Status:          string(domain.InitialStatus()),
	}
	if in.ServicePackageID != 0 {
		pkg := in.ServicePackageID
		ap.ServicePackageID = &pkg
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
