package models

import "time"

// Faculty is a teaching profile linked one-to-one to a login account. Faculty
// are created by staff and soft-disabled through IsActive rather than deleted.
type Faculty struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
}
