package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleHOD        RoleType = "HOD"
	RoleFaculty    RoleType = "FACULTY"
	RoleDepartment RoleType = "DEPARTMENT"
)
