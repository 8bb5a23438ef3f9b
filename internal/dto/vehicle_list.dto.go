package dto

type VehicleListDTO struct {
	VehicleID    uint   `json:"vehicle_id"`
	CustomerID   uint   `json:"customer_id"`
	ModelYear    string `json:"model_year"`
	LicensePlate string `json:"license_plate"`
	CustomerName string `json:"customer_name"`
}
