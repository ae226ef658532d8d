package dto

import (
	"stallbook/internal/core/types"
	"stallbook/internal/domain/catalogs/product"
)

// ProductRequest is the body of POST /products and PUT /products/:id.
// Prices accept both JSON numbers and strings.
type ProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	UnitType    string      `json:"unit_type" binding:"required"`
	CostPrice   types.Money `json:"cost_price"`
	RetailPrice types.Money `json:"retail_price"`
}

// ProductResponse is one product as listed for the entry form.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnitType    string `json:"unit_type"`
	CostPrice   string `json:"cost_price"`
	RetailPrice string `json:"retail_price"`
	IsActive    bool   `json:"is_active"`
}

// ToProductResponse converts a domain product.
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		UnitType:    string(p.UnitType),
		CostPrice:   p.CostPrice.String(),
		RetailPrice: p.RetailPrice.String(),
		IsActive:    p.IsActive,
	}
}

// ToProductResponses converts a list.
func ToProductResponses(items []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToProductResponse(p))
	}
	return out
}
