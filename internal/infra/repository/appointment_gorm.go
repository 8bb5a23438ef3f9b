package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Scheduling
// --------------------------------------------------

func (r *AppointmentGormRepository) ScheduleAppointment(
	ctx context.Context,
	in domain.ScheduleInput,
) (*domain.ScheduleResult, error) {

	var result domain.ScheduleResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		ap := models.Appointment{
			VehicleID:        in.VehicleID,
			ServicePackageID: optionalID(in.ServicePackageID),
			AppointmentDate:  in.Date,
			AppointmentTime:  in.Time,
			Status:           string(domain.InitialStatus()),
		}
		if err := tx.Create(&ap).Error; err != nil {
			return &domain.ScheduleError{Step: domain.StepCreateAppointment, Err: err}
		}

		record := models.ServiceRecord{
			AppointmentID: ap.ID,
			EmployeeID:    optionalID(in.EmployeeID),
			Details:       in.ServiceDetails,
			DurationMin:   in.ServiceDuration,
		}
		if err := tx.Create(&record).Error; err != nil {
			return &domain.ScheduleError{Step: domain.StepCreateServiceRecord, Err: err}
		}

		// baixa antes do vínculo: item inexistente falha como not_found
		// e não como violação de FK. Estoque pode ficar negativo.
		for _, item := range in.Items {
			res := tx.Model(&models.Inventory{}).
				Where("id = ?", item.InventoryID).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return &domain.ScheduleError{
					Step:        domain.StepConsumeInventory,
					InventoryID: item.InventoryID,
					Err:         res.Error,
				}
			}
			if res.RowsAffected == 0 {
				return &domain.ScheduleError{
					Step:        domain.StepConsumeInventory,
					InventoryID: item.InventoryID,
					Err:         httperr.ErrBusiness(httperr.CodeNotFound),
				}
			}

			usage := models.ServiceRecordInventory{
				ServiceRecordID: record.ID,
				InventoryID:     item.InventoryID,
				QuantityUsed:    item.Quantity,
			}
			if err := tx.Create(&usage).Error; err != nil {
				return &domain.ScheduleError{
					Step:        domain.StepConsumeInventory,
					InventoryID: item.InventoryID,
					Err:         err,
				}
			}
		}

		result = domain.ScheduleResult{
			AppointmentID:   ap.ID,
			ServiceRecordID: record.ID,
			ItemsConsumed:   len(in.Items),
		}
		return nil
	})

	if err != nil {
		var se *domain.ScheduleError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, &domain.ScheduleError{Step: domain.StepCommit, Err: err}
	}

	return &result, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return httperr.FromDB(r.db.WithContext(ctx).Create(ap).Error)
}

// --------------------------------------------------
// Appointment (Cancel / Complete)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, httperr.FromDB(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return httperr.FromDB(r.db.WithContext(ctx).Save(ap).Error)
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
