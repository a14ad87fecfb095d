package models

import "time"

// Contribution is the common shape activity records are reshaped to,
// regardless of which candidate table they were fetched from.
type Contribution struct {
	ID          int64     `json:"id"`
	FacultyID   string    `json:"facultyId"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OccurredOn  time.Time `json:"occurredOn"`
}

// Membership is the common shape professional-body memberships are
// reshaped to, regardless of which candidate table they were fetched from.
type Membership struct {
	ID           int64     `json:"id"`
	FacultyID    string    `json:"facultyId"`
	Organization string    `json:"organization"`
	Grade        string    `json:"grade"`
	MemberSince  time.Time `json:"memberSince"`
}
