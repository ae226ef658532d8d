package handlers

import (
	"github.com/gin-gonic/gin"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/domain/catalogs/location"
	"stallbook/internal/infrastructure/http/v1/dto"
)

// LocationHandler serves the location admin endpoints.
type LocationHandler struct {
	*BaseHandler
	service *location.Service
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(base *BaseHandler, service *location.Service) *LocationHandler {
	return &LocationHandler{BaseHandler: base, service: service}
}

// List handles GET /locations.
func (h *LocationHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ToLocationResponses(items))
}

// Create handles POST /locations. Duplicate names conflict.
func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.LocationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	l := location.NewLocation(req.Name)
	if err := h.service.Create(c.Request.Context(), l); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, l.ID.String())
}

// Delete handles DELETE /locations/:id. Fails with a conflict while any
// sales line still references the location.
func (h *LocationHandler) Delete(c *gin.Context) {
	locationID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid location id").WithDetail("id", c.Param("id")))
		return
	}

	if err := h.service.Delete(c.Request.Context(), locationID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
