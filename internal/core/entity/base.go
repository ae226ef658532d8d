package entity

import (
	"context"

	"stallbook/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseCatalog contains common fields for reference data (products, locations).
type BaseCatalog struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`
}

// NewBaseCatalog creates a new BaseCatalog with generated ID.
func NewBaseCatalog() BaseCatalog {
	return BaseCatalog{
		ID: id.New(),
	}
}
