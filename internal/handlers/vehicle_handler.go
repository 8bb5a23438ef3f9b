package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-manager/internal/dto"
	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/httpresp"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
)

type VehicleStore interface {
	EntityStore[models.Vehicle]
	ListWithCustomer(ctx context.Context, customerID uint) ([]dto.VehicleListDTO, error)
}

// VehicleHandler cobre as rotas de veículo que não são CRUD puro.
// PUT e DELETE usam EntityHandler.
type VehicleHandler struct {
	store VehicleStore
}

func NewVehicleHandler(store VehicleStore) *VehicleHandler {
	return &VehicleHandler{store: store}
}

// List devolve todos os veículos com o nome do dono.
func (h *VehicleHandler) List(c *gin.Context) {
	h.list(c, 0)
}

func (h *VehicleHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.list(c, customerID)
}

func (h *VehicleHandler) list(c *gin.Context, customerID uint) {
	vehicles, err := h.store.ListWithCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_list_vehicles")
		return
	}
	httpresp.Array(c, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := req.toModel()
	if err != nil {
		c.Error(err)
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	h.create(c, v)
}

func (h *VehicleHandler) CreateForCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CustomerVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := req.toModel(customerID)
	if err != nil {
		c.Error(err)
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	h.create(c, v)
}

func (h *VehicleHandler) create(c *gin.Context, v *models.Vehicle) {
	if err := h.store.Create(c.Request.Context(), v); err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_create_vehicle")
		return
	}

	httpresp.Created(c, messageResponse{
		Message: "Vehicle added successfully",
		Data:    v,
	})
}
