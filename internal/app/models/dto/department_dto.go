package dto

// CreateDepartmentRequest creates a department row
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science and Engineering"`
	Code string `json:"code" binding:"required" example:"CSE"`
}

// UpdateDepartmentRequest updates a department row and, when detail fields
// are present, upserts the companion row.
type UpdateDepartmentRequest struct {
	Name    string                    `json:"name" binding:"required"`
	Code    string                    `json:"code" binding:"required"`
	Details *DepartmentDetailsRequest `json:"details,omitempty"`
}

// DepartmentDetailsRequest carries the optional extended attributes.
// Fields not supplied default to zero values, never to missing keys.
type DepartmentDetailsRequest struct {
	EstablishmentYear int    `json:"establishmentYear" example:"1998"`
	Code              string `json:"code" example:"CSE"`
	ContactEmail      string `json:"contactEmail" example:"cse@institute.edu"`
	ContactPhone      string `json:"contactPhone" example:"+91-40-23456789"`
	Vision            string `json:"vision"`
	Mission           string `json:"mission"`
	StudentCount      int    `json:"studentCount" example:"480"`
	FacultyCount      int    `json:"facultyCount" example:"32"`
	HODFacultyID      string `json:"hodFacultyId" example:"CSE01"`
}
