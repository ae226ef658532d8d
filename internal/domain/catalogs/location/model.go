// Package location provides the market location catalog.
package location

import (
	"context"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/entity"
)

// Location is a market site where a stall operates. Sales lines reference
// it by name, not by id, so renaming is not supported.
type Location struct {
	entity.BaseCatalog

	// Name is unique across all locations
	Name string `db:"name" json:"name"`
}

// NewLocation creates a location with a generated id.
func NewLocation(name string) *Location {
	return &Location{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
	}
}

// Validate implements entity.Validatable.
func (l *Location) Validate(ctx context.Context) error {
	if l.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
