package location

import (
	"context"

	"stallbook/internal/core/id"
)

// Repository defines the interface for Location persistence.
type Repository interface {
	// Create inserts a new location. Duplicate names fail with a
	// duplicate-entry error.
	Create(ctx context.Context, l *Location) error

	// GetByID retrieves a location by id.
	GetByID(ctx context.Context, locationID id.ID) (*Location, error)

	// List retrieves all locations ordered by name.
	List(ctx context.Context) ([]*Location, error)

	// Delete removes a location permanently.
	Delete(ctx context.Context, locationID id.ID) error

	// ReferencedBySales reports whether any sales line carries this
	// location name.
	ReferencedBySales(ctx context.Context, name string) (bool, error)
}
