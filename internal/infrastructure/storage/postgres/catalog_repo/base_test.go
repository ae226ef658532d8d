package catalog_repo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"stallbook/internal/domain/catalogs/product"
	"stallbook/internal/infrastructure/storage/postgres"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(errors.Join(errors.New("insert locations"), unique)))
	assert.False(t, isUniqueViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}

func TestProductColumns(t *testing.T) {
	cols := postgres.ExtractDBColumns[product.Product]()

	assert.Equal(t, []string{"id", "name", "unit_type", "cost_price", "retail_price", "is_active"}, cols)
}
