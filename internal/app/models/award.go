package models

import "time"

// Award is a faculty award row with an attached certificate file.
type Award struct {
	ID              int64     `json:"id"`
	FacultyID       string    `json:"facultyId"`
	Title           string    `json:"title"`
	IssuedBy        string    `json:"issuedBy"`
	AwardedOn       time.Time `json:"awardedOn"`
	CertificatePath string    `json:"certificatePath"`
	PrizeAmount     float64   `json:"prizeAmount"`
}
