package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/domain/catalogs/location"
	"stallbook/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ location.Repository = (*LocationRepo)(nil)

// LocationRepo is the PostgreSQL implementation of location.Repository.
type LocationRepo struct {
	baseRepo
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(txm *postgres.TxManager) *LocationRepo {
	return &LocationRepo{
		baseRepo: baseRepo{
			tableName:  "locations",
			selectCols: postgres.ExtractDBColumns[location.Location](),
			txm:        txm,
		},
	}
}

// Create inserts a new location. The unique index on name turns a
// duplicate into a DUPLICATE_ENTRY error.
func (r *LocationRepo) Create(ctx context.Context, l *location.Location) error {
	if err := r.insert(ctx, l); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("location", "name", l.Name).WithCause(err)
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// GetByID retrieves a location by id.
func (r *LocationRepo) GetByID(ctx context.Context, locationID id.ID) (*location.Location, error) {
	var l location.Location
	if err := r.getByID(ctx, locationID, &l); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewDatabase(err)
	}
	return &l, nil
}

// List retrieves all locations ordered by name.
func (r *LocationRepo) List(ctx context.Context) ([]*location.Location, error) {
	q := r.baseSelect().OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]*location.Location, 0)
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}

	return items, nil
}

// Delete removes a location permanently.
func (r *LocationRepo) Delete(ctx context.Context, locationID id.ID) error {
	if err := r.deleteByID(ctx, locationID); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// ReferencedBySales reports whether any sales line carries this location
// name. Lines store the name, not the id, so the check goes by name.
func (r *LocationRepo) ReferencedBySales(ctx context.Context, name string) (bool, error) {
	q := r.Builder().
		Select("1").
		From("sales_lines").
		Where(squirrel.Eq{"location": name}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, apperror.NewDatabase(err)
	}

	return true, nil
}
