package models

import "time"

// Enquiry is an unconverted lead from a prospective student. Records are
// created on public submission and afterwards mutated only through the staff
// update form (status, notes, follow-up date); the application never deletes
// them.
type Enquiry struct {
	ID              string        `json:"id"`
	StudentName     string        `json:"student_name"`
	GuardianName    string        `json:"guardian_name"`
	PhoneNumber     string        `json:"phone_number"`
	PreferredCourse Course        `json:"preferred_course"`
	EnquiryDate     time.Time     `json:"enquiry_date"`
	Notes           *string       `json:"notes,omitempty"`
	FollowupDate    *time.Time    `json:"followup_date,omitempty"`
	Status          EnquiryStatus `json:"status"`
}

// CourseDisplay returns the human label of the preferred course.
func (e *Enquiry) CourseDisplay() string {
	return CourseLabel(e.PreferredCourse)
}

// StatusDisplay returns the human label of the status.
func (e *Enquiry) StatusDisplay() string {
	return EnquiryStatusLabel(e.Status)
}
