package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-manager/internal/httperr"
	"github.com/BruksfildServices01/autoshop-manager/internal/httpresp"
)

// EntityStore é satisfeito por repository.EntityGormRepository[T].
type EntityStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, id uint, e *T) error
	Delete(ctx context.Context, id uint) error
}

type entityRequest[T any] interface {
	toModel() (*T, error)
}

// EntityHandler expõe o CRUD simples de uma tabela. R é o corpo aceito
// em POST e PUT.
type EntityHandler[T any, R entityRequest[T]] struct {
	store EntityStore[T]
	label string
	code  string
}

func NewEntityHandler[T any, R entityRequest[T]](
	store EntityStore[T],
	label string,
	code string,
) *EntityHandler[T, R] {
	return &EntityHandler[T, R]{store: store, label: label, code: code}
}

func (h *EntityHandler[T, R]) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_list_"+h.code)
		return
	}
	httpresp.Array(c, items)
}

func (h *EntityHandler[T, R]) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_get_"+h.code)
		return
	}
	httpresp.OK(c, item)
}

func (h *EntityHandler[T, R]) Create(c *gin.Context) {
	item, ok := h.bind(c)
	if !ok {
		return
	}

	if err := h.store.Create(c.Request.Context(), item); err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_create_"+h.code)
		return
	}

	httpresp.Created(c, messageResponse{
		Message: fmt.Sprintf("%s added successfully", h.label),
		Data:    item,
	})
}

func (h *EntityHandler[T, R]) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, ok := h.bind(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Update(ctx, id, item); err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_update_"+h.code)
		return
	}

	updated, err := h.store.Get(ctx, id)
	if err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_get_"+h.code)
		return
	}

	httpresp.OK(c, messageResponse{
		Message: fmt.Sprintf("%s updated successfully", h.label),
		Data:    updated,
	})
}

func (h *EntityHandler[T, R]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		httperr.Respond(c, err, "failed_to_delete_"+h.code)
		return
	}

	httpresp.OK(c, messageResponse{
		Message: fmt.Sprintf("%s deleted successfully", h.label),
	})
}

func (h *EntityHandler[T, R]) bind(c *gin.Context) (*T, bool) {
	var req R
	if !bindJSON(c, &req) {
		return nil, false
	}

	item, err := req.toModel()
	if err != nil {
		c.Error(err)
		httperr.BadRequest(c, "invalid_request", err.Error())
		return nil, false
	}
	return item, true
}
