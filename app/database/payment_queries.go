package database

import (
	"database/sql"
	"fmt"
	"time"

	"super20-academy/app/models"

	"github.com/shopspring/decimal"
)

const paymentColumns = `id, faculty_id, month, per_lecture_rate, amount_paid, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	p := &models.Payment{}
	var notes sql.NullString
	err := row.Scan(&p.ID, &p.FacultyID, &p.Month, &p.PerLectureRate, &p.AmountPaid,
		&notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		p.Notes = &notes.String
	}
	return p, nil
}

// GetOrCreatePayment returns the payment snapshot row for a faculty and
// month, creating it with zero rate and zero paid when absent. The insert
// uses ON CONFLICT DO NOTHING so concurrent requests never produce a second
// row for the same (faculty, month) pair; the follow-up select is the source
// of truth either way.
func GetOrCreatePayment(db *sql.DB, facultyID string, month time.Time) (*models.Payment, error) {
	insert := `INSERT INTO payments (faculty_id, month)
			   VALUES ($1, $2)
			   ON CONFLICT (faculty_id, month) DO NOTHING`
	if _, err := db.Exec(insert, facultyID, month); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	query := "SELECT " + paymentColumns + " FROM payments WHERE faculty_id = $1 AND month = $2"
	p, err := scanPayment(db.QueryRow(query, facultyID, month))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return p, nil
}

// UpdatePaymentRate replaces the per-lecture rate.
func UpdatePaymentRate(db *sql.DB, paymentID string, rate decimal.Decimal) error {
	query := `UPDATE payments SET per_lecture_rate = $1, updated_at = now() WHERE id = $2`
	res, err := db.Exec(query, rate, paymentID)
	if err != nil {
		return fmt.Errorf("failed to update rate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AddPaymentAmount adds the amount to the cumulative amount paid in a single
// statement, so repeated entries accumulate and concurrent entries never lose
// an update.
func AddPaymentAmount(db *sql.DB, paymentID string, amount decimal.Decimal) error {
	query := `UPDATE payments SET amount_paid = amount_paid + $1, updated_at = now() WHERE id = $2`
	res, err := db.Exec(query, amount, paymentID)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetPaymentHistory returns a faculty's most recent monthly snapshots, newest
// month first.
func GetPaymentHistory(db *sql.DB, facultyID string, limit int) ([]*models.Payment, error) {
	query := "SELECT " + paymentColumns + ` FROM payments
			  WHERE faculty_id = $1 ORDER BY month DESC LIMIT $2`

	rows, err := db.Query(query, facultyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment history: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
