package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

func domainItem(id uint, qty int) domain.InventoryItem {
	return domain.InventoryItem{InventoryID: id, Quantity: qty}
}

func TestReport_MonthlyCountsGroupAcrossYears(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)

	addAppointment(t, db, f.Vehicle.ID, nil, "2025-01-10", "09:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-01-05", "10:00", "completed")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-03-15", "11:00", "cancelled")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-07-01", "08:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-07-31", "17:30", "scheduled")

	rows, err := NewReportGormRepository(db).CountAppointmentsByMonth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []report.MonthCount{
		{Month: 1, Count: 2},
		{Month: 3, Count: 1},
		{Month: 7, Count: 2},
	}, rows)

	var sum int64
	for _, r := range rows {
		sum += r.Count
	}
	assert.Equal(t, count(t, db, &models.Appointment{}), sum)
}

func TestReport_UsageAggregates(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()
	appointments := NewAppointmentGormRepository(db)

	unused := models.Inventory{ProductName: "Wiper", Quantity: 5, ReorderLevel: 1}
	require.NoError(t, db.Create(&unused).Error)

	_, err := appointments.ScheduleAppointment(ctx, scheduleInput(f, domainItem(f.Inventory.ID, 3)))
	require.NoError(t, err)
	_, err = appointments.ScheduleAppointment(ctx, scheduleInput(f, domainItem(f.Inventory.ID, 2)))
	require.NoError(t, err)

	repo := NewReportGormRepository(db)

	services, err := repo.ServicePackageUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []report.NamedValue{{Name: "Oil Change", Value: 2}}, services)

	parts, err := repo.InventoryUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []report.NamedValue{{Name: "Oil Filter", Value: 5}}, parts)
}

func TestReport_LowInventoryCount(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	ctx := context.Background()
	repo := NewReportGormRepository(db)

	before, err := repo.CountLowInventory(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Inventory{ProductName: "Coolant", Quantity: 3, ReorderLevel: 4}).Error)
	require.NoError(t, db.Create(&models.Inventory{ProductName: "Fuse", Quantity: 4, ReorderLevel: 4}).Error)

	after, err := repo.CountLowInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestReport_TodayAndUpcoming(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()

	orphan := models.ServicePackage{Name: "Tires", Price: f.Package.Price, DurationMin: 60}
	require.NoError(t, db.Create(&orphan).Error)

	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-14", "09:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-16", "08:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-15", "14:30", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-15", "09:15", "completed")
	addAppointment(t, db, f.Vehicle.ID, &orphan.ID, "2026-10-17", "10:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-10-18", "10:00", "scheduled")

	require.NoError(t, NewEntityGormRepository[models.ServicePackage](db, nil).Delete(ctx, orphan.ID))

	repo := NewReportGormRepository(db)

	today, err := repo.CountAppointmentsOn(ctx, "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, int64(2), today)

	upcoming, err := repo.UpcomingAppointments(ctx, "2026-10-15")
	require.NoError(t, err)

	got := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		got = append(got, u.DateTime)
	}
	assert.Equal(t, []string{"2026-10-15 09:15", "2026-10-15 14:30", "2026-10-16 08:00"}, got)
	assert.Equal(t, report.UpcomingAppointment{
		DateTime: "2026-10-15 09:15",
		Customer: "Ana Souza",
		Vehicle:  "ABC1D23",
		Service:  "Oil Change",
		Status:   "completed",
	}, upcoming[0])
}

func TestReport_ListAppointmentsAndMetrics(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()

	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-20", "09:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, nil, "2026-10-19", "09:00", "scheduled")
	addAppointment(t, db, f.Vehicle.ID, &f.Package.ID, "2026-10-18", "09:00", "cancelled")

	repo := NewReportGormRepository(db)

	rows, err := repo.ListAppointments(ctx, "scheduled")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-10-19", rows[0].AppointmentDate)
	assert.Equal(t, "", rows[0].PackageName)
	assert.Nil(t, rows[0].ServicePackageID)
	assert.Equal(t, "Oil Change", rows[1].PackageName)
	assert.Equal(t, "09:00", rows[1].AppointmentTime)
	assert.Equal(t, "ABC1D23", rows[1].LicensePlate)

	all, err := repo.ListAppointments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	m, err := repo.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, &report.Metrics{
		CustomerCount:    1,
		VehicleCount:     1,
		AppointmentCount: 2,
		InventoryCount:   1,
	}, m)
}
