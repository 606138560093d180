package models

import "time"

// Lecture is a scheduled session taught by a faculty and targeting the
// admissions that share its (standard, batch) pair.
//
// Nothing enforces EndTime > StartTime; the source data contains inverted
// pairs, so both times are surfaced on the detail page for staff review.
type Lecture struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Standard    Standard  `json:"standard"`
	Batch       string    `json:"batch"`
	FacultyID   string    `json:"faculty_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Faculty *Faculty `json:"faculty,omitempty"`
}

// StandardDisplay returns the human label of the standard.
func (l *Lecture) StandardDisplay() string {
	return StandardLabel(l.Standard)
}

// DateDisplay formats the lecture date as DD-MM-YYYY.
func (l *Lecture) DateDisplay() string {
	return l.Date.Format("02-01-2006")
}
