package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

// transition carrega o agendamento, aplica a ação de domínio e grava.
func transition(
	ctx context.Context,
	repo domain.Repository,
	clock timezone.Clock,
	appointmentID uint,
	apply func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := apply(ap, clock()); err != nil {
		return nil, err
	}

	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}

func dispatchTransition(a Auditor, action string, ap *models.Appointment) {
	a.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})
}
