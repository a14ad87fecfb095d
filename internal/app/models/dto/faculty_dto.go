package dto

// CreateFacultyRequest creates a faculty member. The identifier is
// allocated server-side from the department prefix.
type CreateFacultyRequest struct {
	Name             string `json:"name" binding:"required" example:"A. Kumar"`
	DepartmentName   string `json:"departmentName" binding:"required" example:"Computer Science and Engineering"`
	DepartmentPrefix string `json:"departmentPrefix" binding:"required" example:"CSE"`
	Email            string `json:"email" binding:"omitempty,email"`
	JoinDate         string `json:"joinDate" example:"2019-07-01"`
	Designation      string `json:"designation" example:"Assistant Professor"`
	Degree           string `json:"degree" example:"Ph.D"`
	ExperienceYears  int    `json:"experienceYears" example:"8"`
}

// CreatePublicationRequest adds a publication row
type CreatePublicationRequest struct {
	FacultyID     string `json:"facultyId" binding:"required" example:"CSE01"`
	Title         string `json:"title" binding:"required"`
	Journal       string `json:"journal" binding:"required"`
	Year          int    `json:"year" binding:"required" example:"2024"`
	CitationCount int    `json:"citationCount"`
}

// UpdatePublicationRequest updates a publication row
type UpdatePublicationRequest struct {
	Title         string `json:"title" binding:"required"`
	Journal       string `json:"journal" binding:"required"`
	Year          int    `json:"year" binding:"required"`
	CitationCount int    `json:"citationCount"`
}

// CreateAwardRequest adds an award row. It arrives as multipart form data
// because the certificate file travels with it.
type CreateAwardRequest struct {
	FacultyID   string  `form:"facultyId" binding:"required" example:"CSE01"`
	Title       string  `form:"title" binding:"required"`
	IssuedBy    string  `form:"issuedBy" binding:"required"`
	AwardedOn   string  `form:"awardedOn" binding:"required" example:"2023-12-15"`
	PrizeAmount float64 `form:"prizeAmount"`
}

// UpdateAwardRequest updates an award row (certificate replacement is a
// separate upload)
type UpdateAwardRequest struct {
	Title       string  `json:"title" binding:"required"`
	IssuedBy    string  `json:"issuedBy" binding:"required"`
	AwardedOn   string  `json:"awardedOn" binding:"required" example:"2023-12-15"`
	PrizeAmount float64 `json:"prizeAmount"`
}
