package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

type VehicleGormRepository struct {
	*EntityGormRepository[models.Vehicle]
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB, onWrite WriteHook) *VehicleGormRepository {
	return &VehicleGormRepository{
		EntityGormRepository: NewEntityGormRepository[models.Vehicle](db, onWrite),
		db:                   db,
	}
}

// ListWithCustomer lista veículos com o nome do dono. customerID 0 = todos.
func (r *VehicleGormRepository) ListWithCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.VehicleListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("vehicles AS v").
		Select(`
			v.id AS vehicle_id,
			v.customer_id,
			v.model_year,
			v.license_plate,
			c.name AS customer_name`).
		Joins("JOIN customers c ON c.id = v.customer_id")

	if customerID != 0 {
		q = q.Where("v.customer_id = ?", customerID)
	}

	var rows []dto.VehicleListDTO
	err := q.Order("v.id ASC").Scan(&rows).Error
	return rows, err
}
