package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForbiddenKeyword(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		keyword string
		blocked bool
	}{
		{"plain select", "SELECT * FROM faculty", "", false},
		{"lowercase drop", "select * from x; drop table y", "DROP", true},
		{"mixed case", "SeLeCt 1; TrUnCaTe departments", "TRUNCATE", true},
		{"update", "update faculty set name='x'", "UPDATE", true},
		{"insert", "INSERT INTO users VALUES (1)", "INSERT", true},
		{"grant", "GRANT ALL ON faculty TO public", "GRANT", true},
		{"embedded in longer text", "WITH t AS (SELECT 1) SELECT * FROM t -- alter", "ALTER", true},
		{"joins and group by pass", "SELECT d.name, COUNT(*) FROM faculty f JOIN departments d ON d.name = f.department_name GROUP BY d.name", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw, blocked := ForbiddenKeyword(tt.query)
			assert.Equal(t, tt.blocked, blocked)
			assert.Equal(t, tt.keyword, kw)
		})
	}
}

func TestFacultyListQueryFullSchema(t *testing.T) {
	sql, args := FacultyListQuery(FacultyColumns{HasDetails: true, HasExperience: true}, FacultyFilters{})

	assert.Contains(t, sql, "fd.designation")
	assert.Contains(t, sql, "fd.experience_years")
	assert.Contains(t, sql, "LEFT JOIN faculty_details")
	assert.Contains(t, sql, "WHEN 'Professor' THEN 1")
	assert.Contains(t, sql, "WHEN 'Associate Professor' THEN 2")
	assert.Contains(t, sql, "WHEN 'Assistant Professor' THEN 3")
	assert.Empty(t, args)
}

func TestFacultyListQueryMissingDetails(t *testing.T) {
	sql, args := FacultyListQuery(FacultyColumns{}, FacultyFilters{Search: "rao", Department: "CSE"})

	// Missing optionals become NULL aliases so scan targets stay uniform.
	assert.Contains(t, sql, "NULL AS designation")
	assert.Contains(t, sql, "NULL AS degree")
	assert.Contains(t, sql, "NULL AS experience_years")
	assert.NotContains(t, sql, "LEFT JOIN faculty_details")
	assert.NotContains(t, sql, "CASE fd.designation")

	assert.Contains(t, sql, "f.name ILIKE $1")
	assert.Contains(t, sql, "f.department_name = $2")
	assert.Equal(t, []any{"%rao%", "CSE"}, args)
}

func TestFacultyListQueryPartialDetails(t *testing.T) {
	sql, _ := FacultyListQuery(FacultyColumns{HasDetails: true, HasExperience: false}, FacultyFilters{})

	assert.Contains(t, sql, "fd.designation")
	assert.Contains(t, sql, "NULL AS experience_years")
}

func TestDepartmentListQueryScoped(t *testing.T) {
	sql, args := DepartmentListQuery(true, DepartmentFilters{
		Search: "eng",
		Scope:  DepartmentScope{DepartmentID: 7},
	})

	assert.Contains(t, sql, "LEFT JOIN department_details")
	assert.Contains(t, sql, "LEFT JOIN faculty hod")
	assert.Contains(t, sql, "d.name ILIKE $1")
	assert.Contains(t, sql, "d.id = $2")
	assert.Equal(t, []any{"%eng%", int64(7)}, args)
}

func TestDepartmentListQueryNoDetails(t *testing.T) {
	sql, args := DepartmentListQuery(false, DepartmentFilters{})

	assert.Contains(t, sql, "NULL AS hod_name")
	assert.NotContains(t, sql, "LEFT JOIN")
	assert.Empty(t, args)
}

func TestNextFacultyID(t *testing.T) {
	tests := []struct {
		prefix     string
		currentMax string
		want       string
	}{
		{"CSE", "", "CSE01"},
		{"CSE", "CSE01", "CSE02"},
		{"CSE", "CSE09", "CSE10"},
		{"CSE", "CSE42", "CSE43"},
		{"ECE", "ECE99", "ECE100"},
		{"CSE", "CSE100", "CSE101"},
		{"CSE", "garbage", "CSE01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextFacultyID(tt.prefix, tt.currentMax), "prefix=%s max=%s", tt.prefix, tt.currentMax)
	}
}

func TestContributionQueryCandidates(t *testing.T) {
	assert.Contains(t, ContributionQuery("faculty_activities"), "FROM faculty_activities")
	assert.Contains(t, ContributionQuery("faculty_contributions"), "FROM faculty_contributions")
	// Both variants expose the same output shape.
	for _, table := range []string{"faculty_activities", "faculty_contributions"} {
		sql := ContributionQuery(table)
		assert.Contains(t, sql, "AS kind")
		assert.Contains(t, sql, "AS description")
		assert.Contains(t, sql, "AS occurred_on")
	}
}

func TestMaxFacultyIDQueryOrdersByLengthFirst(t *testing.T) {
	sql := MaxFacultyIDQuery()

	// Text comparison alone ranks "CSE99" above "CSE100"; the id feed must
	// order by length before value so three-digit suffixes win.
	assert.Contains(t, sql, "ORDER BY length(id) DESC, id DESC")
	assert.Contains(t, sql, "LIMIT 1")
	assert.NotContains(t, sql, "MAX(")
}

func TestMembershipQueryCandidates(t *testing.T) {
	assert.Contains(t, MembershipQuery("faculty_memberships"), "FROM faculty_memberships")
	assert.Contains(t, MembershipQuery("professional_memberships"), "FROM professional_memberships")
	assert.Contains(t, MembershipQuery("professional_memberships"), "AS organization")
	assert.Contains(t, MembershipQuery("professional_memberships"), "AS member_since")
}
