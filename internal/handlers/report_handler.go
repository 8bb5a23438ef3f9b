package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-manager/internal/domain/report"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/httpresp"
)

// ReportService é satisfeito por *usecase/report.Dashboard.
type ReportService interface {
	MonthlyAppointments(ctx context.Context) ([]report.MonthlyAppointments, error)
	ServiceUsage(ctx context.Context) ([]report.NamedValue, error)
	InventoryUsage(ctx context.Context) ([]report.NamedValue, error)
	ActionableInsights(ctx context.Context) (*report.ActionableInsights, error)
	UpcomingAppointments(ctx context.Context) ([]report.UpcomingAppointment, error)
	Metrics(ctx context.Context) (*report.Metrics, error)
}

type ReportHandler struct {
	reports ReportService
}

func NewReportHandler(reports ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) MonthlyAppointments(c *gin.Context) {
	out, err := h.reports.MonthlyAppointments(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_monthly_appointments")
		return
	}
	httpresp.Array(c, out)
}

func (h *ReportHandler) ServiceUsage(c *gin.Context) {
	out, err := h.reports.ServiceUsage(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_service_usage")
		return
	}
	httpresp.Array(c, out)
}

func (h *ReportHandler) InventoryUsage(c *gin.Context) {
	out, err := h.reports.InventoryUsage(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_inventory_usage")
		return
	}
	httpresp.Array(c, out)
}

func (h *ReportHandler) ActionableInsights(c *gin.Context) {
	out, err := h.reports.ActionableInsights(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_actionable_insights")
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) UpcomingAppointments(c *gin.Context) {
	out, err := h.reports.UpcomingAppointments(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_upcoming_appointments")
		return
	}
	httpresp.Array(c, out)
}

func (h *ReportHandler) Metrics(c *gin.Context) {
	out, err := h.reports.Metrics(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_load_metrics")
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) fail(c *gin.Context, err error, code string) {
	c.Error(err)
	httperr.Respond(c, err, code)
}
