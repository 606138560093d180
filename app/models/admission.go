package models

import (
	"strings"
	"time"
)

// Admission is a confirmed enrolled student record, created on public
// submission and read-mostly afterward.
type Admission struct {
	ID                 string    `json:"id"`
	Surname            string    `json:"surname"`
	Name               string    `json:"name"`
	Middlename         string    `json:"middlename"`
	ContactNumber      string    `json:"contact_number"`
	Mobile1            string    `json:"mobile_1"`
	Mobile2            *string   `json:"mobile_2,omitempty"`
	DateOfBirth        time.Time `json:"date_of_birth"`
	MotherName         string    `json:"mother_name"`
	FatherName         string    `json:"father_name"`
	FatherOccupation   string    `json:"father_occupation"`
	Standard           Standard  `json:"standard"`
	Batch              string    `json:"batch"`
	SchoolCollege      string    `json:"school_college"`
	PreviousPercentage string    `json:"previous_percentage"`
	Stream             Stream    `json:"stream,omitempty"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// FullName joins surname, name and middle name, skipping empty parts.
func (a *Admission) FullName() string {
	parts := []string{a.Surname, a.Name}
	if a.Middlename != "" {
		parts = append(parts, a.Middlename)
	}
	return strings.Join(parts, " ")
}

// StandardDisplay returns the human label of the standard.
func (a *Admission) StandardDisplay() string {
	return StandardLabel(a.Standard)
}

// StreamDisplay returns the human label of the stream, empty when unset.
func (a *Admission) StreamDisplay() string {
	return StreamLabel(a.Stream)
}

// Age computes whole years between the date of birth and the given day.
func (a *Admission) Age(today time.Time) int {
	age := today.Year() - a.DateOfBirth.Year()
	if today.Month() < a.DateOfBirth.Month() ||
		(today.Month() == a.DateOfBirth.Month() && today.Day() < a.DateOfBirth.Day()) {
		age--
	}
	return age
}
