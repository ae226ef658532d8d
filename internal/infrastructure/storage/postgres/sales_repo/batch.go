// Package sales_repo provides the PostgreSQL implementation for sales
// line persistence.
package sales_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stallbook/internal/core/apperror"
	"stallbook/internal/domain/sales"
	"stallbook/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ sales.Repository = (*SalesRepo)(nil)

// insertCols is the column order used for inserts and selects. Must match
// the value order in InsertLines.
var insertCols = []string{
	"id",
	"batch_id",
	"record_date",
	"location",
	"created_at",
	"product_name",
	"unit_type",
	"retail_price",
	"cost_price",
	"purchase_units",
	"return_units",
	"commission_rate",
}

// SalesRepo stores and retrieves sales lines. All queries go through the
// transaction manager's querier, so calls made inside RunInTransaction
// share the open transaction.
type SalesRepo struct {
	txm *postgres.TxManager
}

// NewSalesRepo creates a new sales repository.
func NewSalesRepo(txm *postgres.TxManager) *SalesRepo {
	return &SalesRepo{txm: txm}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *SalesRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// InsertLines inserts all lines in one multi-row statement.
func (r *SalesRepo) InsertLines(ctx context.Context, lines []sales.Line) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert("sales_lines").
		Columns(insertCols...)

	for _, line := range lines {
		q = q.Values(
			line.ID,
			line.BatchID,
			line.RecordDate,
			line.Location,
			line.CreatedAt,
			line.ProductName,
			line.UnitType,
			line.RetailPrice,
			line.CostPrice,
			line.PurchaseUnits,
			line.ReturnUnits,
			line.CommissionRate,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewDatabase(err)
	}

	return nil
}

// ListByDayLocation retrieves all lines for a day and location, newest
// batch first. Lines of one batch stay together because they share the
// exact created_at.
func (r *SalesRepo) ListByDayLocation(ctx context.Context, recordDate time.Time, location string) ([]sales.Line, error) {
	q := r.Builder().
		Select(strings.Join(insertCols, ", ")).
		From("sales_lines").
		Where(squirrel.Eq{"record_date": recordDate}).
		Where(squirrel.Eq{"location": location}).
		OrderBy("created_at DESC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	lines := make([]sales.Line, 0)
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &lines, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}

	return lines, nil
}

// DeleteBatch deletes all lines matching the exact
// (record date, location, created_at) triple. The timestamp is compared
// at full stored precision - batches saved in the same minute never
// collide.
func (r *SalesRepo) DeleteBatch(ctx context.Context, recordDate time.Time, location string, createdAt time.Time) (int64, error) {
	q := r.Builder().
		Delete("sales_lines").
		Where(squirrel.Eq{"record_date": recordDate}).
		Where(squirrel.Eq{"location": location}).
		Where(squirrel.Eq{"created_at": createdAt})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, apperror.NewDatabase(err)
	}

	return result.RowsAffected(), nil
}
