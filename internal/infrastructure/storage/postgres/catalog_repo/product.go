package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/domain/catalogs/product"
	"stallbook/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo is the PostgreSQL implementation of product.Repository.
type ProductRepo struct {
	baseRepo
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		baseRepo: baseRepo{
			tableName:  "products",
			selectCols: postgres.ExtractDBColumns[product.Product](),
			txm:        txm,
		},
	}
}

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	if err := r.insert(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return apperror.NewDuplicate("product", "name", p.Name).WithCause(err)
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// Update modifies an existing product.
func (r *ProductRepo) Update(ctx context.Context, p *product.Product) error {
	if err := r.update(ctx, p); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// GetByID retrieves a product regardless of active flag.
func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	var p product.Product
	if err := r.getByID(ctx, productID, &p); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewDatabase(err)
	}
	return &p, nil
}

// ListActive retrieves products still offered on the entry form,
// ordered by name.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]*product.Product, 0)
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}

	return items, nil
}

// SetActive sets or clears the active flag (soft delete).
func (r *ProductRepo) SetActive(ctx context.Context, productID id.ID, active bool) error {
	q := r.Builder().
		Update(r.tableName).
		Set("is_active", active).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", productID.String())
	}

	return nil
}
