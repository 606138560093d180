package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"super20-academy/app/database"
	"super20-academy/app/models"

	"github.com/shopspring/decimal"
)

// Validation errors surfaced to the user as form messages.
var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// MonthStart normalizes a time to the first day of its month in UTC. Payment
// snapshots are keyed on these normalized dates.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonthStart returns the first day of the following month. December rolls
// over to January of the next year.
func NextMonthStart(month time.Time) time.Time {
	return MonthStart(month).AddDate(0, 1, 0)
}

// AmountDue is the month's payout: per-lecture rate times lecture count.
func AmountDue(rate decimal.Decimal, lecturesCount int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(lecturesCount)))
}

// Balance is what remains owed after the cumulative paid amount.
func Balance(due, paid decimal.Decimal) decimal.Decimal {
	return due.Sub(paid)
}

// ParseAmount parses a user-entered money value. Thousands separators are
// stripped; malformed or negative values are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return amount, nil
}

// LecturesCount counts the faculty's lectures dated within the payment month,
// from its first day (inclusive) to the first day of the next month
// (exclusive).
func LecturesCount(db *sql.DB, facultyID string, month time.Time) (int, error) {
	start := MonthStart(month)
	return database.CountLecturesInRange(db, facultyID, start, NextMonthStart(start))
}

// Snapshot derives the display figures for a payment row: the month's lecture
// count, the amount due and the outstanding balance.
func Snapshot(db *sql.DB, payment *models.Payment) (*models.PaymentSnapshot, error) {
	count, err := LecturesCount(db, payment.FacultyID, payment.Month)
	if err != nil {
		return nil, err
	}
	due := AmountDue(payment.PerLectureRate, count)
	return &models.PaymentSnapshot{
		Payment:       *payment,
		LecturesCount: count,
		AmountDue:     due,
		Balance:       Balance(due, payment.AmountPaid),
	}, nil
}

// CurrentSnapshot fetches or lazily creates the faculty's payment row for the
// month containing now, and derives its figures.
func CurrentSnapshot(db *sql.DB, facultyID string, now time.Time) (*models.PaymentSnapshot, error) {
	payment, err := database.GetOrCreatePayment(db, facultyID, MonthStart(now))
	if err != nil {
		return nil, err
	}
	return Snapshot(db, payment)
}

// UpdateRate validates and replaces the snapshot's per-lecture rate. On a
// validation error nothing is written.
func UpdateRate(db *sql.DB, payment *models.Payment, raw string) error {
	rate, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	if err := database.UpdatePaymentRate(db, payment.ID, rate); err != nil {
		return err
	}
	payment.PerLectureRate = rate
	return nil
}

// RecordPayment validates the entered amount and adds it to the cumulative
// amount paid. Repeated entries accumulate. On a validation error nothing is
// written.
func RecordPayment(db *sql.DB, payment *models.Payment, raw string) error {
	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	if err := database.AddPaymentAmount(db, payment.ID, amount); err != nil {
		return err
	}
	payment.AmountPaid = payment.AmountPaid.Add(amount)
	return nil
}

// SnapshotHistory derives figures for each row of a payment history list.
func SnapshotHistory(db *sql.DB, payments []*models.Payment) ([]*models.PaymentSnapshot, error) {
	snapshots := make([]*models.PaymentSnapshot, 0, len(payments))
	for _, p := range payments {
		s, err := Snapshot(db, p)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}
