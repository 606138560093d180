package models

import "time"

// User is a login account. Staff accounts manage the whole application;
// non-staff accounts are linked one-to-one to a Faculty profile.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated identity carried through a request. Role is
// one of anonymous, faculty, staff. FacultyID is set only for faculty logins.
type Principal struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      Role   `json:"role"`
	FacultyID string `json:"faculty_id,omitempty"`
}

// IsStaff reports whether the principal holds staff capabilities.
func (p *Principal) IsStaff() bool {
	return p != nil && p.Role == RoleStaff
}

// IsFaculty reports whether the principal is a faculty login.
func (p *Principal) IsFaculty() bool {
	return p != nil && p.Role == RoleFaculty
}
