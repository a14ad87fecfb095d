package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *Composer {
	return NewComposer("Test Institute of Technology", "Confidential")
}

func testDoc(sections ...Section) Document {
	return Document{
		Title:       "Faculty Report",
		Subtitle:    "Department of Computer Science",
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Sections:    sections,
	}
}

func TestComposeProducesPDF(t *testing.T) {
	pdfBytes, pages, err := testComposer().Compose(testDoc(
		OkSection("Faculty", &Table{
			Columns: []string{"ID", "Name", "Designation"},
			Rows:    [][]string{{"CSE01", "A. Kumar", "Professor"}},
		}),
	))

	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 500)
	assert.Equal(t, []byte("%PDF"), pdfBytes[:4])
	assert.Equal(t, []string{"Faculty Report"}, pages)
}

func TestEmptyOptionalSectionOmitted(t *testing.T) {
	withEmpty, _, err := testComposer().Compose(testDoc(
		OkSection("Awards", &Table{Columns: []string{"Title"}, Rows: nil}),
		OkSection("Publications", &Table{
			Columns: []string{"Title"},
			Rows:    [][]string{{"On Testing"}},
		}),
	))
	require.NoError(t, err)

	without, _, err := testComposer().Compose(testDoc(
		OkSection("Publications", &Table{
			Columns: []string{"Title"},
			Rows:    [][]string{{"On Testing"}},
		}),
	))
	require.NoError(t, err)

	// The empty awards table contributes nothing to the document.
	assert.Equal(t, len(without), len(withEmpty))
}

func TestUnavailableSectionRendersErrorLine(t *testing.T) {
	section := UnavailableSection("Accreditation Statistics", "relation naac_statistics does not exist")
	assert.False(t, section.Empty())

	pdfBytes, pages, err := testComposer().Compose(testDoc(
		section,
		OkSection("Faculty", &Table{
			Columns: []string{"Name"},
			Rows:    [][]string{{"B. Iyer"}},
		}),
	))
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	// Degraded section does not abort the document.
	assert.Len(t, pages, 1)
}

func TestLongTableGrowsPages(t *testing.T) {
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("CSE%02d", i+1), fmt.Sprintf("Faculty %d", i+1)}
	}

	_, pages, err := testComposer().Compose(testDoc(
		OkSection("Faculty", &Table{Columns: []string{"ID", "Name"}, Rows: rows}),
	))
	require.NoError(t, err)
	assert.Greater(t, len(pages), 1)
}

func TestSignatureBlock(t *testing.T) {
	doc := testDoc(OkSection("Faculty", &Table{
		Columns: []string{"Name"},
		Rows:    [][]string{{"C. Nair"}},
	}))
	doc.Signatures = &SignatureBlock{FacultyName: "C. Nair", HODName: "Unknown Faculty"}

	pdfBytes, _, err := testComposer().Compose(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"faculty", "student", "research", "full"} {
		typ, ok := ParseType(valid)
		assert.True(t, ok)
		assert.Equal(t, Type(valid), typ)
	}
	_, ok := ParseType("payroll")
	assert.False(t, ok)
}
