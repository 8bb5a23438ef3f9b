package report

import (
	"context"

	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName devolve a abreviação do mês 1..12, ou "" fora do intervalo.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthCount é uma linha do agrupamento por mês (todos os anos somados).
type MonthCount struct {
	Month int   `json:"month"`
	Count int64 `json:"appointments"`
}

type MonthlyAppointments struct {
	Name         string `json:"name"`
	Month        int    `json:"month"`
	Appointments int64  `json:"appointments"`
}

// NamedValue alimenta os gráficos de pizza/barra do painel.
type NamedValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type ActionableInsights struct {
	AppointmentsToday int64 `json:"appointments_today"`
	LowInventory      int64 `json:"low_inventory"`
}

type UpcomingAppointment struct {
	DateTime string `json:"date_time"`
	Customer string `json:"customer"`
	Vehicle  string `json:"vehicle"`
	Service  string `json:"service"`
	Status   string `json:"status"`
}

type Metrics struct {
	CustomerCount    int64 `json:"customer_count"`
	VehicleCount     int64 `json:"vehicle_count"`
	AppointmentCount int64 `json:"appointment_count"`
	InventoryCount   int64 `json:"inventory_count"`
}

// Repository expõe as consultas agregadas. Nenhuma delas escreve.
// today é sempre YYYY-MM-DD, resolvido pelo chamador.
type Repository interface {
	CountAppointmentsByMonth(ctx context.Context) ([]MonthCount, error)
	ServicePackageUsage(ctx context.Context) ([]NamedValue, error)
	InventoryUsage(ctx context.Context) ([]NamedValue, error)
	CountAppointmentsOn(ctx context.Context, day string) (int64, error)
	CountLowInventory(ctx context.Context) (int64, error)
	UpcomingAppointments(ctx context.Context, today string) ([]UpcomingAppointment, error)
	ListAppointments(ctx context.Context, status string) ([]dto.AppointmentListDTO, error)
	Metrics(ctx context.Context) (*Metrics, error)
}
