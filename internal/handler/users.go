package handler

import (
	"errors"
	"net/http"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/apierror"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/service"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/users"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc *service.UserService }

func NewUsersHandler(svc *service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load users"))
		return
	}
	resp := make([]dto.UserResponse, 0, len(items))
	for _, u := range items {
		resp = append(resp, dto.NewUserResponse(u))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.UserResponse]{Data: resp, Total: len(resp)})
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(created))
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Delete requires ?confirm=true — the destructive path is never one click.
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirm") == "true"
	if err := h.svc.Delete(c.Request.Context(), id, confirmed); err != nil {
		writeUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsersHandler) ToggleStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	updated, err := h.svc.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

func writeUserError(c *gin.Context, err error) {
	var verr *users.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(verr.Fields))
	case errors.Is(err, users.ErrProtected):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, users.ErrNotConfirmed):
		c.JSON(http.StatusBadRequest, apierror.New("pass confirm=true to delete a user"))
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("user not found"))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
