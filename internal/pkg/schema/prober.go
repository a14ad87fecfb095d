package schema

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/acadbase/acadbase/internal/pkg/logger"
)

// Querier is the subset of pgxpool.Pool the prober needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Prober answers table/column existence questions at request time so query
// assembly can omit references to schema pieces that are not there.
// Probes are re-run per request; the schema is effectively static in
// practice but is never assumed so.
type Prober struct {
	db Querier
}

// NewProber creates a prober over the given connection source.
func NewProber(db Querier) *Prober {
	return &Prober{db: db}
}

// TableExists reports whether a table is present in the public schema.
// A metadata-query failure is treated as "does not exist": the optional
// feature fails closed, the request does not.
func (p *Prober) TableExists(ctx context.Context, table string) bool {
	var exists bool
	err := p.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, table).Scan(&exists)
	if err != nil {
		logger.Warn().Err(err).Str("table", table).Msg("Table probe failed, treating as absent")
		return false
	}
	return exists
}

// ColumnExists reports whether a column is present on a table.
func (p *Prober) ColumnExists(ctx context.Context, table, column string) bool {
	var exists bool
	err := p.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	if err != nil {
		logger.Warn().Err(err).Str("table", table).Str("column", column).Msg("Column probe failed, treating as absent")
		return false
	}
	return exists
}

// FirstExistingTable returns the first candidate table that exists, or
// "" when none do. Used for activity records that may live under
// different names depending on how far migrations got.
func (p *Prober) FirstExistingTable(ctx context.Context, candidates ...string) string {
	for _, table := range candidates {
		if p.TableExists(ctx, table) {
			return table
		}
	}
	return ""
}
