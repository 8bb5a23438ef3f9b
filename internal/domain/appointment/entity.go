package appointment

import (
	"time"

	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	return move(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return move(ap, StatusCompleted, now)
}

// move troca o status e carimba o horário da mudança.
func move(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
