package models

import "time"

// AttendanceRecord is a per-student attendance entry for a lecture. The
// (lecture, student) pair is unique; resubmissions update the existing row.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	LectureID string           `json:"lecture_id"`
	StudentID string           `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	MarkedBy  *string          `json:"marked_by,omitempty"`
	MarkedAt  time.Time        `json:"marked_at"`
	Notes     *string          `json:"notes,omitempty"`

	Student *Admission `json:"student,omitempty"`
}
