package schema

import (
	"context"
	"fmt"
	"strings"
)

// ErrSchemaIncompatible is returned when required schema pieces are missing at startup.
var ErrSchemaIncompatible = fmt.Errorf("database schema is incompatible")

// requiredSchema lists the tables and columns every handler may assume.
// Companion tables (department_details, faculty_details) and candidate
// activity tables are deliberately absent: those stay optional and are
// probed per request.
var requiredSchema = map[string][]string{
	"departments":          {"id", "name", "code", "created_at"},
	"faculty":              {"id", "name", "department_name", "email", "join_date"},
	"faculty_publications": {"id", "faculty_id", "title", "journal", "year"},
	"faculty_awards":       {"id", "faculty_id", "title", "issued_by", "awarded_on", "certificate_path"},
	"users":                {"id", "email", "password_hash", "full_name", "role"},
	"auth_tokens":          {"id", "user_id", "refresh_token", "expires_at", "revoked"},
}

// ValidateRequired checks the required tables and columns once at boot and
// fails fast when migrations are outstanding, so request handlers can
// assume the base schema instead of re-proving it per request.
func (p *Prober) ValidateRequired(ctx context.Context) error {
	var missingTables []string
	missingColumns := map[string][]string{}

	for table, columns := range requiredSchema {
		if !p.TableExists(ctx, table) {
			missingTables = append(missingTables, table)
			continue
		}
		for _, column := range columns {
			if !p.ColumnExists(ctx, table, column) {
				missingColumns[table] = append(missingColumns[table], column)
			}
		}
	}

	if len(missingTables) == 0 && len(missingColumns) == 0 {
		return nil
	}

	var parts []string
	if len(missingTables) > 0 {
		parts = append(parts, fmt.Sprintf("missing tables: %s", strings.Join(missingTables, ", ")))
	}
	for table, cols := range missingColumns {
		parts = append(parts, fmt.Sprintf("missing columns in %s: %s", table, strings.Join(cols, ", ")))
	}
	return fmt.Errorf("%w: %s", ErrSchemaIncompatible, strings.Join(parts, "; "))
}
