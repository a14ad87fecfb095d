package models

import "time"

// Department is a department row. Detail fields come from the optional
// department_details companion table; pointers are nil when the companion
// row or table is absent.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`

	Details *DepartmentDetails `json:"details,omitempty"`
}

// DepartmentDetails holds the extended attributes of a department.
type DepartmentDetails struct {
	DepartmentID      int64  `json:"departmentId"`
	EstablishmentYear int    `json:"establishmentYear"`
	Code              string `json:"code"`
	ContactEmail      string `json:"contactEmail"`
	ContactPhone      string `json:"contactPhone"`
	Vision            string `json:"vision"`
	Mission           string `json:"mission"`
	StudentCount      int    `json:"studentCount"`
	FacultyCount      int    `json:"facultyCount"`
	HODFacultyID      string `json:"hodFacultyId"`
}

// DepartmentSummary is the listing shape: base row plus whatever detail
// columns the schema had, NULLs already substituted with defaults.
type DepartmentSummary struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	CreatedAt         time.Time `json:"createdAt"`
	EstablishmentYear int       `json:"establishmentYear"`
	StudentCount      int       `json:"studentCount"`
	FacultyCount      int       `json:"facultyCount"`
	HODName           string    `json:"hodName"`
}
