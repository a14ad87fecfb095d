// Package report turns tabular query results into paginated PDF documents:
// a letterhead block, data tables, summary statistics and an optional
// signature block. Pagination is greedy row packing against a fixed
// vertical budget, not a general layout engine.
package report

import "time"

// Type tags the institutional report variants.
type Type string

const (
	TypeFaculty  Type = "faculty"
	TypeStudent  Type = "student"
	TypeResearch Type = "research"
	TypeFull     Type = "full"
)

// ParseType validates a report type string.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFaculty, TypeStudent, TypeResearch, TypeFull:
		return Type(s), true
	}
	return "", false
}

// Table is a rendered data table.
type Table struct {
	Columns []string
	Widths  []float64 // column widths in mm; equal split when empty
	Rows    [][]string
}

// Stat is a computed summary line.
type Stat struct {
	Label string
	Value string
}

// Section is one block of a document. A section is either available
// (table and/or stats) or unavailable with a reason; unavailable sections
// render a visible error line instead of failing the document.
type Section struct {
	Title       string
	Table       *Table
	Stats       []Stat
	Unavailable string // non-empty when the section's data fetch failed
}

// OkSection builds an available section.
func OkSection(title string, table *Table, stats ...Stat) Section {
	return Section{Title: title, Table: table, Stats: stats}
}

// UnavailableSection builds a degraded section carrying the failure reason.
func UnavailableSection(title, reason string) Section {
	return Section{Title: title, Unavailable: reason}
}

// Empty reports whether the section has nothing to render. Empty optional
// sections are omitted from the document.
func (s Section) Empty() bool {
	if s.Unavailable != "" {
		return false
	}
	if s.Table != nil && len(s.Table.Rows) > 0 {
		return false
	}
	return len(s.Stats) == 0
}

// SignatureBlock closes faculty-facing reports. Names are resolved from
// the data; callers substitute "Unknown Faculty" when resolution fails.
type SignatureBlock struct {
	FacultyName string
	HODName     string
}

// Document is a transient, request-scoped aggregation rendered once.
type Document struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Sections    []Section
	Signatures  *SignatureBlock
}
