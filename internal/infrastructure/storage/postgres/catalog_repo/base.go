// Package catalog_repo provides PostgreSQL implementations for the catalog
// repositories (products and locations).
package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"stallbook/internal/core/apperror"
	"stallbook/internal/core/id"
	"stallbook/internal/infrastructure/storage/postgres"
)

// baseRepo provides common CRUD plumbing shared by the catalog
// repositories. Queries always go through txm.GetQuerier, so calls made
// inside a transaction join it automatically.
type baseRepo struct {
	tableName  string
	selectCols []string
	txm        *postgres.TxManager
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *baseRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseRepo) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// insert stores an entity using its "db" tags.
func (r *baseRepo) insert(ctx context.Context, entity any) error {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// update rewrites every column of an existing row, matched by id.
func (r *baseRepo) update(ctx context.Context, entity any) error {
	data := postgres.StructToMap(entity)
	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}
	delete(data, "id")

	q := r.Builder().
		Update(r.tableName).
		SetMap(data).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, fmt.Sprint(entityID))
	}

	return nil
}

// getByID scans a single row into dest.
func (r *baseRepo) getByID(ctx context.Context, entityID id.ID, dest any) error {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), dest, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return apperror.NewNotFound(r.tableName, entityID.String())
		}
		return fmt.Errorf("get by id: %w", err)
	}

	return nil
}

// deleteByID performs physical removal from the database.
func (r *baseRepo) deleteByID(ctx context.Context, entityID id.ID) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("execute delete %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID.String())
	}

	return nil
}

// isUniqueViolation reports whether err is a unique constraint violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
