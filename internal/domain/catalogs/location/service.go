package location

import (
	"context"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/pkg/logger"
)

// Service provides business logic for the location catalog.
type Service struct {
	repo Repository
}

// NewService creates a new location service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new location.
func (s *Service) Create(ctx context.Context, l *Location) error {
	if err := l.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return err
	}

	logger.Info(ctx, "location created", "id", l.ID, "name", l.Name)
	return nil
}

// List returns all locations.
func (s *Service) List(ctx context.Context) ([]*Location, error) {
	return s.repo.List(ctx)
}

// Delete removes a location. Locations still carried by historical sales
// lines cannot be deleted.
func (s *Service) Delete(ctx context.Context, locationID id.ID) error {
	l, err := s.repo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}

	referenced, err := s.repo.ReferencedBySales(ctx, l.Name)
	if err != nil {
		return err
	}
	if referenced {
		return apperror.NewConflict("location is referenced by sales records").
			WithDetail("name", l.Name)
	}

	if err := s.repo.Delete(ctx, locationID); err != nil {
		return err
	}

	logger.Info(ctx, "location deleted", "id", locationID, "name", l.Name)
	return nil
}
