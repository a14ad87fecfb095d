package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this layer cares about.
const (
	codeUniqueViolation  = "23505"
	codeNotNullViolation = "23502"
	codeUndefinedTable   = "42P01"
)

// IsUniqueViolation checks for any unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsNullIDViolation reports whether an insert failed because the id column
// produced no value. Happens when the table predates identity columns;
// the department create path alters the column and retries once.
func IsNullIDViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeNotNullViolation && pgErr.ColumnName == "id"
}

// IsUndefinedTable checks whether a statement referenced a missing table.
// The candidate-table repositories treat this as an empty result: a table
// can be dropped between the probe and the query.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}
