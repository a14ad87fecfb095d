package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models/dto"
)

// AdminRepository runs pre-screened read statements for the admin console.
// Keyword screening happens in the service layer; by the time a statement
// reaches this repository it has already passed the denylist.
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// RunReadQuery executes the statement and reshapes the result into column
// names plus one map per row.
func (r *AdminRepository) RunReadQuery(ctx context.Context, query string) (*dto.AdminQueryResult, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error running admin query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = string(fd.Name)
	}

	result := &dto.AdminQueryResult{Columns: columns, Rows: []map[string]interface{}{}}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result.Count = len(result.Rows)
	return result, nil
}
