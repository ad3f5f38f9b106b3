package handler

import (
	"errors"
	"net/http"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/apierror"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct{ svc *service.PurchaseService }

func NewPurchaseHandler(svc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

// Checkout godoc
// @Summary Buy an item and receive payment instructions
// @Tags purchase
// @Accept json
// @Produce json
// @Param body body dto.PurchaseRequest true "Checkout request"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/purchase [post]
func (h *PurchaseHandler) Checkout(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Purchase(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("item not found"))
		case errors.Is(err, catalog.ErrOutOfStock):
			c.JSON(http.StatusConflict, apierror.New("not enough stock for the requested quantity"))
		case errors.Is(err, catalog.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}
