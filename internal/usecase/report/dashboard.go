package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/autoshop-manager/internal/cache"
	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

// Dashboard reúne as consultas do painel. Relatórios que dependem de
// "hoje" nunca passam pelo cache.
type Dashboard struct {
	repo   report.Repository
	cache  cache.ReportCache
	clock  timezone.Clock
	logger *zap.Logger
}

func NewDashboard(
	repo report.Repository,
	reportCache cache.ReportCache,
	clock timezone.Clock,
	logger *zap.Logger,
) *Dashboard {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}
	return &Dashboard{
		repo:   repo,
		cache:  reportCache,
		clock:  clock,
		logger: logger.Named("dashboard"),
	}
}

func (d *Dashboard) today() string {
	return timezone.Today(d.clock())
}

// MonthlyAppointments soma os agendamentos por mês do ano, juntando anos.
func (d *Dashboard) MonthlyAppointments(ctx context.Context) ([]report.MonthlyAppointments, error) {
	return cache.Remember(ctx, d.cache, d.logger, cache.KeyMonthlyAppointments,
		func() ([]report.MonthlyAppointments, error) {
			rows, err := d.repo.CountAppointmentsByMonth(ctx)
			if err != nil {
				return nil, err
			}

			out := make([]report.MonthlyAppointments, 0, len(rows))
			for _, r := range rows {
				out = append(out, report.MonthlyAppointments{
					Name:         report.MonthName(r.Month),
					Month:        r.Month,
					Appointments: r.Count,
				})
			}
			return out, nil
		})
}

func (d *Dashboard) ServiceUsage(ctx context.Context) ([]report.NamedValue, error) {
	return cache.Remember(ctx, d.cache, d.logger, cache.KeyServiceUsage,
		func() ([]report.NamedValue, error) {
			return d.repo.ServicePackageUsage(ctx)
		})
}

func (d *Dashboard) InventoryUsage(ctx context.Context) ([]report.NamedValue, error) {
	return cache.Remember(ctx, d.cache, d.logger, cache.KeyInventoryUsage,
		func() ([]report.NamedValue, error) {
			return d.repo.InventoryUsage(ctx)
		})
}

func (d *Dashboard) ActionableInsights(ctx context.Context) (*report.ActionableInsights, error) {
	today, err := d.repo.CountAppointmentsOn(ctx, d.today())
	if err != nil {
		return nil, err
	}

	low, err := cache.Remember(ctx, d.cache, d.logger, cache.KeyLowInventory,
		func() (int64, error) {
			return d.repo.CountLowInventory(ctx)
		})
	if err != nil {
		return nil, err
	}

	return &report.ActionableInsights{
		AppointmentsToday: today,
		LowInventory:      low,
	}, nil
}

func (d *Dashboard) UpcomingAppointments(ctx context.Context) ([]report.UpcomingAppointment, error) {
	return d.repo.UpcomingAppointments(ctx, d.today())
}

// ListAppointments é a lista do painel: só agendamentos em aberto.
func (d *Dashboard) ListAppointments(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	return d.repo.ListAppointments(ctx, string(domain.StatusScheduled))
}

func (d *Dashboard) Metrics(ctx context.Context) (*report.Metrics, error) {
	return d.repo.Metrics(ctx)
}
