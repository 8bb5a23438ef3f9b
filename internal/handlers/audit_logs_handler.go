package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/httpresp"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	reader AuditLogReader
}

func NewAuditLogsHandler(reader AuditLogReader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

type auditLogsResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	// --------------------------------------------------
	// Intervalo de datas (to inclusivo)
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := timezone.ParseDate(fromStr)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Invalid 'from' date.")
			return
		}
		f.From = &from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := timezone.ParseDate(toStr)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Invalid 'to' date.")
			return
		}
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, auditLogsResponse{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	})
}
