package appointment

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

type CompleteAppointment struct {
	repo       domain.Repository
	audit      Auditor
	clock      timezone.Clock
	invalidate Invalidate
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
	invalidate Invalidate,
) *CompleteAppointment {
	if invalidate == nil {
		invalidate = noInvalidate
	}
	return &CompleteAppointment{
		repo:       repo,
		audit:      audit,
		clock:      clock,
		invalidate: invalidate,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := transition(ctx, uc.repo, uc.clock, appointmentID, domain.Complete)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	dispatchTransition(uc.audit, audit.ActionAppointmentCompleted, ap)

	return ap, nil
}
