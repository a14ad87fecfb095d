package models

import "time"

// Faculty is a faculty member row. The id carries the department prefix
// ("CSE01"); department is referenced by name, not by foreign key.
type Faculty struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DepartmentName string    `json:"departmentName"`
	Email          string    `json:"email"`
	JoinDate       time.Time `json:"joinDate"`
	CreatedAt      time.Time `json:"createdAt"`

	Details *FacultyDetails `json:"details,omitempty"`
}

// FacultyDetails holds the extended attributes from the optional
// faculty_details companion table.
type FacultyDetails struct {
	FacultyID       string `json:"facultyId"`
	Designation     string `json:"designation"`
	Degree          string `json:"degree"`
	ExperienceYears int    `json:"experienceYears"`
}

// FacultySummary is the listing shape with schema-defensive detail columns.
type FacultySummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DepartmentName  string    `json:"departmentName"`
	Email           string    `json:"email"`
	JoinDate        time.Time `json:"joinDate"`
	Designation     string    `json:"designation"`
	Degree          string    `json:"degree"`
	ExperienceYears int       `json:"experienceYears"`
}
