package dto

type AppointmentListDTO struct {
	AppointmentID    uint   `json:"appointment_id"`
	VehicleID        uint   `json:"vehicle_id"`
	ServicePackageID *uint  `json:"service_package_id"`
	AppointmentDate  string `json:"appointment_date"`
	AppointmentTime  string `json:"appointment_time"`
	Status           string `json:"status"`
	LicensePlate     string `json:"license_plate"`
	PackageName      string `json:"package_name"`
}
