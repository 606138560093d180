package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the monthly payment snapshot for a faculty. Month always holds
// the first day of the month; the (faculty, month) pair is unique. AmountPaid
// accumulates across staff payment entries, it is never replaced.
type Payment struct {
	ID             string          `json:"id"`
	FacultyID      string          `json:"faculty_id"`
	Month          time.Time       `json:"month"`
	PerLectureRate decimal.Decimal `json:"per_lecture_rate"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MonthDisplay formats the snapshot month as YYYY-MM.
func (p *Payment) MonthDisplay() string {
	return p.Month.Format("2006-01")
}

// PaymentSnapshot is a Payment joined with the figures derived from the
// faculty's lectures for that month.
type PaymentSnapshot struct {
	Payment
	LecturesCount int             `json:"lectures_count"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	Balance       decimal.Decimal `json:"balance"`
}
