package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CountAppointmentsByMonth(
	ctx context.Context,
) ([]report.MonthCount, error) {

	var rows []report.MonthCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("CAST(EXTRACT(MONTH FROM appointment_date) AS INT) AS month, COUNT(*) AS count").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error

	return rows, err
}

func (r *ReportGormRepository) ServicePackageUsage(
	ctx context.Context,
) ([]report.NamedValue, error) {

	var rows []report.NamedValue
	err := r.db.WithContext(ctx).Raw(`
		SELECT sp.package_name AS name, COUNT(*) AS value
		FROM service_packages sp
		JOIN appointments a ON a.service_package_id = sp.id
		GROUP BY sp.package_name
		ORDER BY sp.package_name ASC
	`).Scan(&rows).Error

	return rows, err
}

func (r *ReportGormRepository) InventoryUsage(
	ctx context.Context,
) ([]report.NamedValue, error) {

	var rows []report.NamedValue
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.product_name AS name, SUM(sri.quantity_used) AS value
		FROM service_record_inventory sri
		JOIN inventory i ON i.id = sri.inventory_id
		GROUP BY i.product_name
		ORDER BY i.product_name ASC
	`).Scan(&rows).Error

	return rows, err
}

func (r *ReportGormRepository) CountAppointmentsOn(
	ctx context.Context,
	day string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date = CAST(? AS DATE)", day).
		Count(&count).Error

	return count, err
}

func (r *ReportGormRepository) CountLowInventory(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("quantity < reorder_level").
		Count(&count).Error

	return count, err
}

// UpcomingAppointments usa INNER JOIN no pacote: agendamentos cujo pacote
// foi apagado não aparecem no feed.
func (r *ReportGormRepository) UpcomingAppointments(
	ctx context.Context,
	today string,
) ([]report.UpcomingAppointment, error) {

	var rows []report.UpcomingAppointment
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(a.appointment_date, 'YYYY-MM-DD') || ' ' || to_char(a.appointment_time, 'HH24:MI') AS date_time,
			c.name AS customer,
			v.license_plate AS vehicle,
			sp.package_name AS service,
			a.status AS status
		FROM appointments a
		JOIN vehicles v ON a.vehicle_id = v.id
		JOIN customers c ON v.customer_id = c.id
		JOIN service_packages sp ON a.service_package_id = sp.id
		WHERE a.appointment_date >= CAST(? AS DATE)
		ORDER BY a.appointment_date ASC, a.appointment_time ASC, a.id ASC
	`, today).Scan(&rows).Error

	return rows, err
}

// ListAppointments filtra por status quando status != "".
func (r *ReportGormRepository) ListAppointments(
	ctx context.Context,
	status string,
) ([]dto.AppointmentListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`
			a.id AS appointment_id,
			a.vehicle_id,
			a.service_package_id,
			to_char(a.appointment_date, 'YYYY-MM-DD') AS appointment_date,
			to_char(a.appointment_time, 'HH24:MI') AS appointment_time,
			a.status,
			v.license_plate,
			COALESCE(sp.package_name, '') AS package_name`).
		Joins("JOIN vehicles v ON v.id = a.vehicle_id").
		Joins("LEFT JOIN service_packages sp ON sp.id = a.service_package_id")

	if status != "" {
		q = q.Where("a.status = ?", status)
	}

	var rows []dto.AppointmentListDTO
	err := q.
		Order("a.appointment_date ASC, a.appointment_time ASC, a.id ASC").
		Scan(&rows).Error

	return rows, err
}

func (r *ReportGormRepository) Metrics(
	ctx context.Context,
) (*report.Metrics, error) {

	var m report.Metrics
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers) AS customer_count,
			(SELECT COUNT(*) FROM vehicles) AS vehicle_count,
			(SELECT COUNT(*) FROM appointments WHERE status = 'scheduled') AS appointment_count,
			(SELECT COUNT(*) FROM inventory) AS inventory_count
	`).Scan(&m).Error
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Compile-time check
var _ report.Repository = (*ReportGormRepository)(nil)
