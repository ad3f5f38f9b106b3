package handler

import (
	"errors"
	"net/http"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/apierror"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/order"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc *service.OrderService }

func NewOrdersHandler(svc *service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load orders"))
		return
	}
	resp := make([]dto.OrderResponse, 0, len(items))
	for _, o := range items {
		resp = append(resp, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.OrderResponse]{Data: resp, Total: len(resp)})
}

func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load order"))
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(o))
}

// UpdateStatus moves an order along the lifecycle. An illegal move answers
// 409 and leaves the stored order untouched.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("order not found"))
		case errors.Is(err, order.ErrIllegalTransition):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(updated))
}
