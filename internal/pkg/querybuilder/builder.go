// Package querybuilder assembles SQL whose shape depends on which optional
// tables and columns the schema prober found, plus caller-supplied filters.
// Everything here is a pure function of its inputs: probe results and
// filters in, SQL text and a parameter list out. Parameters are always
// passed separately from the SQL text.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// designationRankCase orders faculty listings by seniority. Unknown
// designations sort last.
const designationRankCase = `CASE fd.designation
		WHEN 'Professor' THEN 1
		WHEN 'Associate Professor' THEN 2
		WHEN 'Assistant Professor' THEN 3
		ELSE 4
	END`

// FacultyColumns captures the prober's findings about the optional
// faculty_details companion table.
type FacultyColumns struct {
	HasDetails    bool // faculty_details table exists
	HasExperience bool // faculty_details.experience_years column exists
}

// FacultyFilters are the caller-supplied listing filters.
type FacultyFilters struct {
	Search     string
	Department string
}

// FacultyListQuery builds the faculty listing statement. Missing optional
// columns are substituted with literal NULLs aliased to the expected name
// so scan targets are identical across schema variants.
func FacultyListQuery(cols FacultyColumns, filters FacultyFilters) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT f.id, f.name, f.department_name, f.email, f.join_date")
	if cols.HasDetails {
		b.WriteString(", fd.designation, fd.degree")
	} else {
		b.WriteString(", NULL AS designation, NULL AS degree")
	}
	if cols.HasDetails && cols.HasExperience {
		b.WriteString(", fd.experience_years")
	} else {
		b.WriteString(", NULL AS experience_years")
	}
	b.WriteString("\nFROM faculty f")
	if cols.HasDetails {
		b.WriteString("\nLEFT JOIN faculty_details fd ON fd.faculty_id = f.id")
	}

	var conds []string
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conds = append(conds, fmt.Sprintf("f.name ILIKE $%d", len(args)))
	}
	if filters.Department != "" {
		args = append(args, filters.Department)
		conds = append(conds, fmt.Sprintf("f.department_name = $%d", len(args)))
	}
	if len(conds) > 0 {
		b.WriteString("\nWHERE " + strings.Join(conds, " AND "))
	}

	b.WriteString("\nORDER BY f.name")
	if cols.HasDetails {
		b.WriteString(", " + designationRankCase)
	}
	b.WriteString(", f.join_date")

	return b.String(), args
}

// DepartmentScope restricts a department listing to the caller's own row.
// Zero means unscoped (admin, HOD and faculty callers).
type DepartmentScope struct {
	DepartmentID int64
}

// DepartmentFilters are the department listing inputs.
type DepartmentFilters struct {
	Search string
	Scope  DepartmentScope
}

// DepartmentListQuery builds the department listing statement. When the
// details companion exists the HOD name is resolved in the same statement
// with LEFT JOINs rather than a per-row lookup.
func DepartmentListQuery(hasDetails bool, filters DepartmentFilters) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT d.id, d.name, d.code, d.created_at")
	if hasDetails {
		b.WriteString(`, dd.establishment_year, dd.student_count, dd.faculty_count, hod.name AS hod_name`)
	} else {
		b.WriteString(`, NULL AS establishment_year, NULL AS student_count, NULL AS faculty_count, NULL AS hod_name`)
	}
	b.WriteString("\nFROM departments d")
	if hasDetails {
		b.WriteString("\nLEFT JOIN department_details dd ON dd.department_id = d.id")
		b.WriteString("\nLEFT JOIN faculty hod ON hod.id = dd.hod_faculty_id")
	}

	var conds []string
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conds = append(conds, fmt.Sprintf("d.name ILIKE $%d", len(args)))
	}
	if filters.Scope.DepartmentID > 0 {
		args = append(args, filters.Scope.DepartmentID)
		conds = append(conds, fmt.Sprintf("d.id = $%d", len(args)))
	}
	if len(conds) > 0 {
		b.WriteString("\nWHERE " + strings.Join(conds, " AND "))
	}

	b.WriteString("\nORDER BY d.name")

	return b.String(), args
}

// ContributionQuery normalizes whichever candidate activity table exists
// to the common contribution shape. The table name comes from the prober,
// never from the caller.
func ContributionQuery(table string) string {
	switch table {
	case "faculty_activities":
		return `SELECT id, faculty_id, activity_type AS kind, title, COALESCE(description, '') AS description, activity_date AS occurred_on
			FROM faculty_activities WHERE faculty_id = $1 ORDER BY activity_date DESC`
	default:
		return `SELECT id, faculty_id, contribution_type AS kind, title, COALESCE(details, '') AS description, contributed_on AS occurred_on
			FROM faculty_contributions WHERE faculty_id = $1 ORDER BY contributed_on DESC`
	}
}

// MaxFacultyIDQuery selects the highest existing id for a department
// prefix. Ids are text, so a plain MAX would rank "CSE99" above "CSE100";
// ordering by length before value keeps numeric suffixes in order.
func MaxFacultyIDQuery() string {
	return `SELECT id FROM faculty WHERE id LIKE $1 || '%'
		ORDER BY length(id) DESC, id DESC LIMIT 1`
}

// MembershipQuery normalizes whichever candidate membership table exists
// to the common membership shape. The table name comes from the prober,
// never from the caller.
func MembershipQuery(table string) string {
	switch table {
	case "professional_memberships":
		return `SELECT id, faculty_id, body AS organization, COALESCE(level, '') AS grade, joined_on AS member_since
			FROM professional_memberships WHERE faculty_id = $1 ORDER BY joined_on DESC`
	default:
		return `SELECT id, faculty_id, organization, COALESCE(grade, '') AS grade, member_since
			FROM faculty_memberships WHERE faculty_id = $1 ORDER BY member_since DESC`
	}
}

// forbiddenKeywords gates the admin ad-hoc query endpoint. This is a blunt
// substring filter, not SQL-injection protection; the endpoint stays
// admin-only for that reason.
var forbiddenKeywords = []string{
	"DROP", "DELETE", "TRUNCATE", "UPDATE", "ALTER", "CREATE", "INSERT", "GRANT", "REVOKE",
}

// ForbiddenKeyword reports the first denylisted keyword contained in the
// statement, case-insensitively.
func ForbiddenKeyword(query string) (string, bool) {
	upper := strings.ToUpper(query)
	for _, kw := range forbiddenKeywords {
		if strings.Contains(upper, kw) {
			return kw, true
		}
	}
	return "", false
}

// NextFacultyID allocates the next identifier for a department prefix.
// currentMax is the highest existing id for the prefix ("" when none);
// the numeric suffix is incremented and left-padded to two digits, so the
// first id for a prefix is <prefix>01.
func NextFacultyID(prefix, currentMax string) string {
	suffix := 0
	if strings.HasPrefix(currentMax, prefix) {
		if n, err := strconv.Atoi(currentMax[len(prefix):]); err == nil {
			suffix = n
		}
	}
	return fmt.Sprintf("%s%02d", prefix, suffix+1)
}
