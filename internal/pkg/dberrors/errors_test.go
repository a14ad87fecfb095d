package dberrors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	nullID := &pgconn.PgError{Code: "23502", ColumnName: "id"}
	missingTable := &pgconn.PgError{Code: "42P01"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsNullIDViolation(nullID))
	assert.True(t, IsUndefinedTable(missingTable))

	// Wrapped driver errors still classify.
	assert.True(t, IsUndefinedTable(fmt.Errorf("query failed: %w", missingTable)))

	assert.False(t, IsUndefinedTable(unique))
	assert.False(t, IsUniqueViolation(fmt.Errorf("connection reset")))
	assert.False(t, IsNullIDViolation(&pgconn.PgError{Code: "23502", ColumnName: "name"}))
}
