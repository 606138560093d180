package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"super20-academy/app/models"
)

// EnquiryFilters represents filtering options for the enquiry list.
type EnquiryFilters struct {
	Search   string
	Status   string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

// buildEnquiryWhere assembles the WHERE clause and arguments for the filters.
// Date bounds compare against the enquiry date's day in the server time zone.
func buildEnquiryWhere(f EnquiryFilters) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(student_name ILIKE $%d OR guardian_name ILIKE $%d OR phone_number ILIKE $%d)", n, n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.DateFrom != "" {
		args = append(args, f.DateFrom)
		clauses = append(clauses, fmt.Sprintf("enquiry_date::date >= $%d", len(args)))
	}
	if f.DateTo != "" {
		args = append(args, f.DateTo)
		clauses = append(clauses, fmt.Sprintf("enquiry_date::date <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanEnquiry(row interface{ Scan(...interface{}) error }) (*models.Enquiry, error) {
	e := &models.Enquiry{}
	var notes sql.NullString
	var followup sql.NullTime
	err := row.Scan(
		&e.ID, &e.StudentName, &e.GuardianName, &e.PhoneNumber,
		&e.PreferredCourse, &e.EnquiryDate, &notes, &followup, &e.Status,
	)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	if followup.Valid {
		e.FollowupDate = &followup.Time
	}
	return e, nil
}

const enquiryColumns = `id, student_name, guardian_name, phone_number, preferred_course,
	enquiry_date, notes, followup_date, status`

// CreateEnquiry stores a public enquiry submission. The enquiry date and the
// in_process status are set by the database.
func CreateEnquiry(db *sql.DB, e *models.Enquiry) error {
	query := `INSERT INTO enquiries (student_name, guardian_name, phone_number, preferred_course, notes, followup_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, enquiry_date, status`

	err := db.QueryRow(query,
		e.StudentName, e.GuardianName, e.PhoneNumber, e.PreferredCourse, e.Notes, e.FollowupDate,
	).Scan(&e.ID, &e.EnquiryDate, &e.Status)
	if err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

// GetEnquiries returns one page of filtered enquiries, newest first, plus the
// total row count for pagination.
func GetEnquiries(db *sql.DB, f EnquiryFilters) ([]*models.Enquiry, int, error) {
	where, args := buildEnquiryWhere(f)

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM enquiries"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}

	query := "SELECT " + enquiryColumns + " FROM enquiries" + where +
		fmt.Sprintf(" ORDER BY enquiry_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []*models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, 0, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, total, rows.Err()
}

func GetEnquiryByID(db *sql.DB, id string) (*models.Enquiry, error) {
	query := "SELECT " + enquiryColumns + " FROM enquiries WHERE id = $1"
	return scanEnquiry(db.QueryRow(query, id))
}

// UpdateEnquiry mutates only the staff-editable fields: status, notes and the
// follow-up date.
func UpdateEnquiry(db *sql.DB, id string, status models.EnquiryStatus, notes *string, followup *time.Time) error {
	query := `UPDATE enquiries SET status = $1, notes = $2, followup_date = $3 WHERE id = $4`
	res, err := db.Exec(query, status, notes, followup, id)
	if err != nil {
		return fmt.Errorf("failed to update enquiry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountEnquiries returns the total and converted enquiry counts for the
// dashboard.
func CountEnquiries(db *sql.DB) (total, converted int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'converted') FROM enquiries`
	if err = db.QueryRow(query).Scan(&total, &converted); err != nil {
		return 0, 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	return total, converted, nil
}

// GetRecentEnquiries returns the newest enquiries for the dashboard.
func GetRecentEnquiries(db *sql.DB, limit int) ([]*models.Enquiry, error) {
	query := "SELECT " + enquiryColumns + " FROM enquiries ORDER BY enquiry_date DESC LIMIT $1"

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []*models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

// GetEnquiriesForExport returns every enquiry ordered by preferred course then
// enquiry date, the order used in the spreadsheet export.
func GetEnquiriesForExport(db *sql.DB) ([]*models.Enquiry, error) {
	query := "SELECT " + enquiryColumns + " FROM enquiries ORDER BY preferred_course, enquiry_date"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []*models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}
