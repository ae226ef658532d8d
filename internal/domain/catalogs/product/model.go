// Package product provides the product catalog.
// Products carry the current prices and unit type offered on the entry form;
// sales lines copy those values at save time and never read back.
package product

import (
	"context"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/entity"
	"stallbook/internal/core/types"
	"stallbook/internal/domain/measure"
)

// Product is a sellable good with its current prices.
type Product struct {
	entity.BaseCatalog

	// Name is the display name shown on entry forms and copied into lines
	Name string `db:"name" json:"name"`

	// UnitType decides how quantities are entered (weight or count)
	UnitType measure.UnitType `db:"unit_type" json:"unit_type"`

	// CostPrice is the current cost per base unit
	CostPrice types.Money `db:"cost_price" json:"cost_price"`

	// RetailPrice is the current retail price per base unit
	RetailPrice types.Money `db:"retail_price" json:"retail_price"`

	// IsActive is cleared instead of deleting the row, so historical
	// snapshots stay intact
	IsActive bool `db:"is_active" json:"is_active"`
}

// NewProduct creates an active product with a generated id.
func NewProduct(name string, unitType measure.UnitType, costPrice, retailPrice types.Money) *Product {
	return &Product{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
		UnitType:    unitType,
		CostPrice:   costPrice,
		RetailPrice: retailPrice,
		IsActive:    true,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !p.UnitType.Valid() {
		return apperror.NewValidation("unit type must be weight or count").
			WithDetail("field", "unit_type").
			WithDetail("value", string(p.UnitType))
	}

	if p.CostPrice.IsNegative() || p.RetailPrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative").
			WithDetail("cost_price", p.CostPrice.String()).
			WithDetail("retail_price", p.RetailPrice.String())
	}

	return nil
}
