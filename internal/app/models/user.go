package models

import "time"

// User is an account row. DepartmentID scopes DEPARTMENT-role callers;
// FacultyID links FACULTY-role callers to their faculty row.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         RoleType  `json:"role"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
	FacultyID    *string   `json:"facultyId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthToken is a persisted refresh token.
type AuthToken struct {
	ID           int64
	UserID       int64
	RefreshToken string
	ExpiresAt    time.Time
	Revoked      bool
}
