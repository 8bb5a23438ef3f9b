package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleAppointmentInput struct {
	CustomerID       uint
	VehicleID        uint
	ServicePackageID uint
	EmployeeID       uint

	Date string
	Time string

	ServiceDetails  string
	ServiceDuration int

	Items []domain.InventoryItem
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	repo       domain.Repository
	audit      Auditor
	invalidate Invalidate
	logger     *zap.Logger
}

func NewScheduleAppointment(
	repo domain.Repository,
	audit Auditor,
	invalidate Invalidate,
	logger *zap.Logger,
) *ScheduleAppointment {
	if invalidate == nil {
		invalidate = noInvalidate
	}
	return &ScheduleAppointment{
		repo:       repo,
		audit:      audit,
		invalidate: invalidate,
		logger:     logger.Named("schedule"),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*domain.ScheduleResult, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora (antes de abrir a transação)
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	hhmm, err := timezone.ParseTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2️⃣ Transação
	// --------------------------------------------------
	result, err := uc.repo.ScheduleAppointment(ctx, domain.ScheduleInput{
		CustomerID:       in.CustomerID,
		VehicleID:        in.VehicleID,
		ServicePackageID: in.ServicePackageID,
		EmployeeID:       in.EmployeeID,
		Date:             date,
		Time:             hhmm,
		ServiceDetails:   in.ServiceDetails,
		ServiceDuration:  in.ServiceDuration,
		Items:            in.Items,
	})
	if err != nil {
		step := domain.StepCommit
		var se *domain.ScheduleError
		if errors.As(err, &se) {
			step = se.Step
		}

		uc.logger.Warn("appointment scheduling rolled back",
			zap.String("step", step),
			zap.Uint("vehicle_id", in.VehicleID),
			zap.Error(err),
		)

		uc.audit.Dispatch(audit.Event{
			Action: audit.ActionScheduleFailed,
			Entity: "appointment",
			Metadata: map[string]any{
				"step":        step,
				"customer_id": in.CustomerID,
				"vehicle_id":  in.VehicleID,
				"error":       err.Error(),
			},
		})
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Efeitos pós-commit
	// --------------------------------------------------
	uc.invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentScheduled,
		Entity:   "appointment",
		EntityID: &result.AppointmentID,
		Metadata: map[string]any{
			"customer_id":       in.CustomerID,
			"vehicle_id":        in.VehicleID,
			"service_record_id": result.ServiceRecordID,
			"items_consumed":    result.ItemsConsumed,
		},
	})

	return result, nil
}
