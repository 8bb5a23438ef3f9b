package appointment

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

type CancelAppointment struct {
	repo       domain.Repository
	audit      Auditor
	clock      timezone.Clock
	invalidate Invalidate
}

func NewCancelAppointment(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
	invalidate Invalidate,
) *CancelAppointment {
	if invalidate == nil {
		invalidate = noInvalidate
	}
	return &CancelAppointment{
		repo:       repo,
		audit:      audit,
		clock:      clock,
		invalidate: invalidate,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := transition(ctx, uc.repo, uc.clock, appointmentID, domain.Cancel)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	dispatchTransition(uc.audit, audit.ActionAppointmentCancelled, ap)

	return ap, nil
}
