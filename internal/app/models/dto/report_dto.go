package dto

// GenerateReportRequest selects an institutional report variant
type GenerateReportRequest struct {
	Type string `json:"type" binding:"required" example:"faculty" enums:"faculty,student,research,full"`
}

// ReportResponse carries a rendered document, base64-encoded, plus the
// titles of the generated pages.
type ReportResponse struct {
	FileName string   `json:"fileName" example:"faculty_report.pdf"`
	MimeType string   `json:"mimeType" example:"application/pdf"`
	Content  string   `json:"content"` // base64
	Pages    []string `json:"pages"`
}
