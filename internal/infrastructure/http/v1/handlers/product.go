package handlers

import (
	"github.com/gin-gonic/gin"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/domain/catalogs/product"
	"stallbook/internal/domain/measure"
	"stallbook/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product admin endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// List handles GET /products: active products only.
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ToProductResponses(items))
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := product.NewProduct(req.Name, measure.UnitType(req.UnitType), req.CostPrice, req.RetailPrice)
	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, p.ID.String())
}

// Update handles PUT /products/:id. Only current prices, name and unit
// type change; stored sales lines keep their snapshots.
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	p.Name = req.Name
	p.UnitType = measure.UnitType(req.UnitType)
	p.CostPrice = req.CostPrice
	p.RetailPrice = req.RetailPrice

	if err := h.service.Update(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ToProductResponse(p))
}

// Delete handles DELETE /products/:id: deactivates, never removes the row.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

func (h *ProductHandler) parseID(c *gin.Context) (id.ID, bool) {
	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id").WithDetail("id", c.Param("id")))
		return id.Nil(), false
	}
	return productID, true
}
