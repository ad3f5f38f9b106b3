package handler

import (
	"errors"
	"net/http"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/apierror"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the list/get/create/update/delete endpoints for one
// category. One instance per category, all routed the same way.
type CatalogHandler[T catalog.Record[T]] struct {
	svc *service.CatalogService[T]
}

func NewCatalogHandler[T catalog.Record[T]](svc *service.CatalogService[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{svc: svc}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load collection"))
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse[T]{Data: items, Total: len(items)})
}

func (h *CatalogHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("record not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load record"))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var req dto.RecordFieldsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req.Fields)
	if err != nil {
		if errors.Is(err, model.ErrUnknownField) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RecordFieldsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, req.Fields)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("record not found"))
		case errors.Is(err, model.ErrUnknownField):
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the record. Deleting an absent id still answers 204 —
// removal is idempotent.
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to delete record"))
		return
	}
	c.Status(http.StatusNoContent)
}
