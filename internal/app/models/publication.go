package models

// Publication is a faculty publication row.
type Publication struct {
	ID            int64  `json:"id"`
	FacultyID     string `json:"facultyId"`
	Title         string `json:"title"`
	Journal       string `json:"journal"`
	Year          int    `json:"year"`
	CitationCount int    `json:"citationCount"`
}
