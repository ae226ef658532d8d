package product

import (
	"context"

	"stallbook/internal/core/id"
	"stallbook/pkg/logger"
)

// Service provides business logic for the product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	logger.Info(ctx, "product created", "id", p.ID, "name", p.Name)
	return nil
}

// Update validates and stores changed master data. Sales lines written
// before the change keep their snapshot values.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	return s.repo.Update(ctx, p)
}

// GetByID retrieves a product by id.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// ListActive returns the products offered on the entry form.
func (s *Service) ListActive(ctx context.Context) ([]*Product, error) {
	return s.repo.ListActive(ctx)
}

// Deactivate takes a product off the entry form without touching history.
func (s *Service) Deactivate(ctx context.Context, productID id.ID) error {
	if err := s.repo.SetActive(ctx, productID, false); err != nil {
		return err
	}

	logger.Info(ctx, "product deactivated", "id", productID)
	return nil
}
