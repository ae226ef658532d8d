package sales

import (
	"context"
	"fmt"
	"time"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/tx"
	"stallbook/pkg/logger"
)

// Service provides business operations for sales batches.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new sales batch service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create builds a batch from entered items and inserts all of its lines in
// one transaction. Either every line is stored or none is.
func (s *Service) Create(ctx context.Context, recordDate time.Time, location string, items []LineInput) (*Batch, error) {
	batch := NewBatch(recordDate, location)
	for _, item := range items {
		if err := batch.AddLine(item); err != nil {
			return nil, err
		}
	}

	if err := batch.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.InsertLines(ctx, batch.Lines); err != nil {
			return fmt.Errorf("insert lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sales batch created",
		"batch_id", batch.ID,
		"location", batch.Location,
		"lines", len(batch.Lines))

	return batch, nil
}

// ListByDayLocation returns all lines recorded for the day and location.
func (s *Service) ListByDayLocation(ctx context.Context, recordDate time.Time, location string) ([]Line, error) {
	if recordDate.IsZero() {
		return nil, apperror.NewValidation("record date is required").
			WithDetail("field", "date")
	}
	if location == "" {
		return nil, apperror.NewValidation("location is required").
			WithDetail("field", "location")
	}

	return s.repo.ListByDayLocation(ctx, recordDate, location)
}

// Delete removes one batch by its exact (record date, location, created_at)
// identity. No prefix or formatted-time matching: two batches saved within
// the same display minute stay distinct.
func (s *Service) Delete(ctx context.Context, recordDate time.Time, location string, createdAt time.Time) error {
	if createdAt.IsZero() {
		return apperror.NewValidation("created_at is required").
			WithDetail("field", "created_at")
	}

	var deleted int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteBatch(ctx, recordDate, location, createdAt)
		return err
	})
	if err != nil {
		return err
	}

	if deleted == 0 {
		return apperror.NewNotFound("batch", createdAt.Format(time.RFC3339Nano))
	}

	logger.Info(ctx, "sales batch deleted",
		"location", location,
		"created_at", createdAt,
		"lines", deleted)

	return nil
}

// Replace swaps one batch for a new one inside a single transaction: the
// old lines are deleted and the new ones inserted, and a failure at any
// point leaves the original batch untouched. The replacement gets a fresh
// id and created_at; the original save time is not preserved.
func (s *Service) Replace(ctx context.Context, recordDate time.Time, location string, createdAt time.Time, items []LineInput) (*Batch, error) {
	batch := NewBatch(recordDate, location)
	for _, item := range items {
		if err := batch.AddLine(item); err != nil {
			return nil, err
		}
	}

	if err := batch.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.DeleteBatch(ctx, recordDate, location, createdAt)
		if err != nil {
			return fmt.Errorf("delete old batch: %w", err)
		}
		if deleted == 0 {
			return apperror.NewNotFound("batch", createdAt.Format(time.RFC3339Nano))
		}

		if err := s.repo.InsertLines(ctx, batch.Lines); err != nil {
			return fmt.Errorf("insert new lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sales batch replaced",
		"batch_id", batch.ID,
		"location", batch.Location,
		"old_created_at", createdAt,
		"lines", len(batch.Lines))

	return batch, nil
}
