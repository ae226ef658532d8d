package product

import (
	"context"

	"stallbook/internal/core/id"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// Create inserts a new product.
	Create(ctx context.Context, p *Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, p *Product) error

	// GetByID retrieves a product regardless of active flag.
	GetByID(ctx context.Context, productID id.ID) (*Product, error)

	// ListActive retrieves products still offered on the entry form.
	ListActive(ctx context.Context) ([]*Product, error)

	// SetActive sets or clears the active flag (soft delete).
	SetActive(ctx context.Context, productID id.ID, active bool) error
}
