package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/testhelpers"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	tdb := testhelpers.GetTestDB(t)
	tdb.Reset(t)
	return tdb.DB
}

type fixture struct {
	Customer  models.Customer
	Vehicle   models.Vehicle
	Package   models.ServicePackage
	Employee  models.Employee
	Inventory models.Inventory
}

// seed cria cliente, veículo, pacote, funcionário e um item com estoque 10.
func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		Customer: models.Customer{Name: "Ana Souza", Email: "ana@example.com", Phone: "555-0100"},
		Package: models.ServicePackage{
			Name:        "Oil Change",
			Description: "Oil and filter",
			Price:       decimal.RequireFromString("49.90"),
			DurationMin: 30,
		},
		Employee:  models.Employee{Name: "Carlos", IsActive: true},
		Inventory: models.Inventory{ProductName: "Oil Filter", Quantity: 10, ReorderLevel: 2},
	}

	require.NoError(t, db.Create(&f.Customer).Error)
	f.Vehicle = models.Vehicle{CustomerID: f.Customer.ID, ModelYear: "2019", LicensePlate: "ABC1D23"}
	require.NoError(t, db.Create(&f.Vehicle).Error)
	require.NoError(t, db.Create(&f.Package).Error)
	require.NoError(t, db.Create(&f.Employee).Error)
	require.NoError(t, db.Create(&f.Inventory).Error)

	return f
}

func addAppointment(t *testing.T, db *gorm.DB, vehicleID uint, pkgID *uint, date string, hhmm string, status string) models.Appointment {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)

	ap := models.Appointment{
		VehicleID:        vehicleID,
		ServicePackageID: pkgID,
		AppointmentDate:  day,
		AppointmentTime:  hhmm,
		Status:           status,
	}
	require.NoError(t, db.Create(&ap).Error)
	return ap
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func quantityOf(t *testing.T, db *gorm.DB, inventoryID uint) int {
	t.Helper()
	var inv models.Inventory
	require.NoError(t, db.First(&inv, inventoryID).Error)
	return inv.Quantity
}
