package handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domain "github.com/BruksfildServices01/autoshop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/httpresp"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	ucAppointment "github.com/BruksfildServices01/autoshop-manager/internal/usecase/appointment"
)

// ======================================================
// USE CASES
// ======================================================

type appointmentScheduler interface {
	Execute(ctx context.Context, in ucAppointment.ScheduleAppointmentInput) (*domain.ScheduleResult, error)
}

type appointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type appointmentTransition interface {
	Execute(ctx context.Context, appointmentID uint) (*models.Appointment, error)
}

type appointmentLister interface {
	ListAppointments(ctx context.Context) ([]dto.AppointmentListDTO, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	schedule appointmentScheduler
	create   appointmentCreator
	cancel   appointmentTransition
	complete appointmentTransition
	list     appointmentLister
}

func NewAppointmentHandler(
	schedule appointmentScheduler,
	create appointmentCreator,
	cancel appointmentTransition,
	complete appointmentTransition,
	list appointmentLister,
) *AppointmentHandler {
	return &AppointmentHandler{
		schedule: schedule,
		create:   create,
		cancel:   cancel,
		complete: complete,
		list:     list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	VehicleID        uint   `json:"vehicle_id" binding:"required"`
	ServicePackageID uint   `json:"service_package_id"`
	AppointmentDate  string `json:"appointment_date" binding:"required"`
	AppointmentTime  string `json:"appointment_time" binding:"required"`
}

type InventoryItemRequest struct {
	InventoryID flexID `json:"inventory_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"gt=0"`
}

type ScheduleAppointmentRequest struct {
	CustomerID      flexID                 `json:"customer_id" binding:"required"`
	VehicleID       flexID                 `json:"vehicle_id" binding:"required"`
	PackageID       flexID                 `json:"package_id"`
	EmployeeID      flexID                 `json:"employee_id"`
	AppointmentDate string                 `json:"appointment_date" binding:"required"`
	AppointmentTime string                 `json:"appointment_time" binding:"required"`
	ServiceDetails  string                 `json:"service_details"`
	ServiceDuration int                    `json:"service_duration" binding:"min=0"`
	InventoryItems  []InventoryItemRequest `json:"inventory_items" binding:"dive"`
}

// envelope antigo: {"body": "<json em string>"}
type scheduleEnvelope struct {
	Body *string `json:"body"`
}

var errEmptyBody = errors.New("empty request body")

// decodeScheduleRequest aceita o objeto direto ou o envelope antigo.
func decodeScheduleRequest(raw []byte) (*ScheduleAppointmentRequest, error) {
	if len(raw) == 0 {
		return nil, errEmptyBody
	}

	var env scheduleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.Body != nil {
		raw = []byte(*env.Body)
	}

	var req ScheduleAppointmentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ======================================================
// SCHEDULE (transação completa)
// ======================================================

func (h *AppointmentHandler) Schedule(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	req, err := decodeScheduleRequest(raw)
	if err != nil {
		c.Error(err)
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	items := make([]domain.InventoryItem, 0, len(req.InventoryItems))
	for _, it := range req.InventoryItems {
		items = append(items, domain.InventoryItem{
			InventoryID: uint(it.InventoryID),
			Quantity:    it.Quantity,
		})
	}

	res, err := h.schedule.Execute(c.Request.Context(), ucAppointment.ScheduleAppointmentInput{
		CustomerID:       uint(req.CustomerID),
		VehicleID:        uint(req.VehicleID),
		ServicePackageID: uint(req.PackageID),
		EmployeeID:       uint(req.EmployeeID),
		Date:             req.AppointmentDate,
		Time:             req.AppointmentTime,
		ServiceDetails:   req.ServiceDetails,
		ServiceDuration:  req.ServiceDuration,
		Items:            items,
	})
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_schedule_appointment")
		return
	}

	httpresp.Created(c, dto.ScheduleAppointmentResponse{
		Message:         "Appointment created successfully",
		AppointmentID:   res.AppointmentID,
		ServiceRecordID: res.ServiceRecordID,
		ItemsConsumed:   res.ItemsConsumed,
	})
}

// ======================================================
// CREATE (agendamento simples)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		VehicleID:        req.VehicleID,
		ServicePackageID: req.ServicePackageID,
		Date:             req.AppointmentDate,
		Time:             req.AppointmentTime,
	})
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, messageResponse{
		Message: "Appointment created successfully",
		Data:    dto.NewAppointmentDTO(ap),
	})
}

// ======================================================
// LIST (painel)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.ListAppointments(c.Request.Context())
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}
	httpresp.Array(c, aps)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel, "failed_to_cancel_appointment")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete, "failed_to_complete_appointment")
}

func (h *AppointmentHandler) transition(c *gin.Context, uc appointmentTransition, fallback string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, fallback)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}
