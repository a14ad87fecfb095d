package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in mm, A4 portrait.
const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	contentBelow = 270.0 // vertical budget; rows past this start a new page
	rowHeight    = 7.0
	headerHeight = 8.0
)

// Composer renders Documents onto a fixed letterhead.
type Composer struct {
	institute string
	footer    string
}

// NewComposer creates a composer for the given institute letterhead.
func NewComposer(institute, footer string) *Composer {
	return &Composer{institute: institute, footer: footer}
}

// Compose renders the document and returns the PDF bytes together with the
// ordered titles of the generated pages.
func (c *Composer) Compose(doc Document) ([]byte, []string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	var pages []string
	addPage := func() {
		pdf.AddPage()
		pages = append(pages, doc.Title)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		footer := fmt.Sprintf("%s  |  Page %d of {nb}", c.footer, pdf.PageNo())
		pdf.CellFormat(0, 6, footer, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	addPage()
	c.letterhead(pdf, doc)

	for _, section := range doc.Sections {
		if section.Empty() {
			continue
		}
		c.section(pdf, section, addPage)
	}

	if doc.Signatures != nil {
		c.signatures(pdf, *doc.Signatures, addPage)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), pages, nil
}

func (c *Composer) letterhead(pdf *gofpdf.Fpdf, doc Document) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, c.institute, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Generated on "+doc.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(marginLeft, pdf.GetY(), 210-marginRight, pdf.GetY())
	pdf.Ln(4)
}

// ensure starts a new page when the next block of the given height would
// cross the vertical budget.
func ensure(pdf *gofpdf.Fpdf, height float64, addPage func()) {
	if pdf.GetY()+height > contentBelow {
		addPage()
		pdf.SetY(marginTop)
	}
}

func (c *Composer) section(pdf *gofpdf.Fpdf, section Section, addPage func()) {
	ensure(pdf, headerHeight+2*rowHeight, addPage)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, headerHeight, section.Title, "", 1, "L", false, 0, "")

	if section.Unavailable != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(180, 30, 30)
		pdf.CellFormat(0, rowHeight, fmt.Sprintf("Data unavailable: %s", section.Unavailable), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
		return
	}

	if section.Table != nil && len(section.Table.Rows) > 0 {
		c.table(pdf, *section.Table, addPage)
	}

	if len(section.Stats) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, stat := range section.Stats {
			ensure(pdf, rowHeight, addPage)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(70, rowHeight, stat.Label, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(0, rowHeight, stat.Value, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(3)
}

func (c *Composer) table(pdf *gofpdf.Fpdf, table Table, addPage func()) {
	widths := table.Widths
	if len(widths) != len(table.Columns) {
		usable := 210.0 - marginLeft - marginRight
		widths = make([]float64, len(table.Columns))
		for i := range widths {
			widths[i] = usable / float64(len(table.Columns))
		}
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range table.Columns {
			pdf.CellFormat(widths[i], rowHeight, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	header()
	for _, row := range table.Rows {
		if pdf.GetY()+rowHeight > contentBelow {
			addPage()
			pdf.SetY(marginTop)
			header()
		}
		for i := range table.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func (c *Composer) signatures(pdf *gofpdf.Fpdf, sig SignatureBlock, addPage func()) {
	ensure(pdf, 30, addPage)

	y := pdf.GetY() + 18
	if y < contentBelow-24 {
		y = contentBelow - 24
	}
	pdf.SetY(y)
	pdf.SetFont("Helvetica", "", 10)

	half := (210.0 - marginLeft - marginRight) / 2
	pdf.CellFormat(half, 6, sig.FacultyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, sig.HODName, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(half, 5, "Signature of Faculty", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Head of Department", "", 1, "R", false, 0, "")
}
