package database

import (
	"database/sql"
	"fmt"
	"strings"

	"super20-academy/app/models"
)

// AdmissionFilters represents filtering options for the admission list.
type AdmissionFilters struct {
	Search   string
	Standard string
	Batch    string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

// buildAdmissionWhere assembles the WHERE clause and arguments for the filters.
func buildAdmissionWhere(f AdmissionFilters) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(name ILIKE $%d OR surname ILIKE $%d OR mobile_1 ILIKE $%d OR school_college ILIKE $%d)", n, n, n, n))
	}
	if f.Standard != "" {
		args = append(args, f.Standard)
		clauses = append(clauses, fmt.Sprintf("standard = $%d", len(args)))
	}
	if f.Batch != "" {
		args = append(args, "%"+f.Batch+"%")
		clauses = append(clauses, fmt.Sprintf("batch ILIKE $%d", len(args)))
	}
	if f.DateFrom != "" {
		args = append(args, f.DateFrom)
		clauses = append(clauses, fmt.Sprintf("submitted_at::date >= $%d", len(args)))
	}
	if f.DateTo != "" {
		args = append(args, f.DateTo)
		clauses = append(clauses, fmt.Sprintf("submitted_at::date <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

const admissionColumns = `id, surname, name, middlename, contact_number, mobile_1, mobile_2,
	date_of_birth, mother_name, father_name, father_occupation, standard, batch,
	school_college, previous_percentage, stream, submitted_at`

func scanAdmission(row interface{ Scan(...interface{}) error }) (*models.Admission, error) {
	a := &models.Admission{}
	var mobile2, stream sql.NullString
	err := row.Scan(
		&a.ID, &a.Surname, &a.Name, &a.Middlename, &a.ContactNumber, &a.Mobile1, &mobile2,
		&a.DateOfBirth, &a.MotherName, &a.FatherName, &a.FatherOccupation, &a.Standard,
		&a.Batch, &a.SchoolCollege, &a.PreviousPercentage, &stream, &a.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	if mobile2.Valid {
		a.Mobile2 = &mobile2.String
	}
	if stream.Valid {
		a.Stream = models.Stream(stream.String)
	}
	return a, nil
}

// CreateAdmission stores a public admission submission.
func CreateAdmission(db *sql.DB, a *models.Admission) error {
	var stream interface{}
	if a.Stream != "" {
		stream = string(a.Stream)
	}

	query := `INSERT INTO admissions (surname, name, middlename, contact_number, mobile_1, mobile_2,
				date_of_birth, mother_name, father_name, father_occupation, standard, batch,
				school_college, previous_percentage, stream)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING id, submitted_at`

	err := db.QueryRow(query,
		a.Surname, a.Name, a.Middlename, a.ContactNumber, a.Mobile1, a.Mobile2,
		a.DateOfBirth, a.MotherName, a.FatherName, a.FatherOccupation, a.Standard,
		a.Batch, a.SchoolCollege, a.PreviousPercentage, stream,
	).Scan(&a.ID, &a.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

// GetAdmissions returns one page of filtered admissions, newest first, plus
// the total row count for pagination.
func GetAdmissions(db *sql.DB, f AdmissionFilters) ([]*models.Admission, int, error) {
	where, args := buildAdmissionWhere(f)

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM admissions"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count admissions: %w", err)
	}

	query := "SELECT " + admissionColumns + " FROM admissions" + where +
		fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch admissions: %w", err)
	}
	defer rows.Close()

	var admissions []*models.Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, 0, err
		}
		admissions = append(admissions, a)
	}
	return admissions, total, rows.Err()
}

func GetAdmissionByID(db *sql.DB, id string) (*models.Admission, error) {
	query := "SELECT " + admissionColumns + " FROM admissions WHERE id = $1"
	return scanAdmission(db.QueryRow(query, id))
}

// CountAdmissions returns the total admission count for the dashboard.
func CountAdmissions(db *sql.DB) (int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admissions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count admissions: %w", err)
	}
	return total, nil
}

// GetRecentAdmissions returns the newest admissions for the dashboard.
func GetRecentAdmissions(db *sql.DB, limit int) ([]*models.Admission, error) {
	query := "SELECT " + admissionColumns + " FROM admissions ORDER BY submitted_at DESC LIMIT $1"

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admissions: %w", err)
	}
	defer rows.Close()

	var admissions []*models.Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, a)
	}
	return admissions, rows.Err()
}

// GetTargetStudents returns the admissions a lecture targets: every student in
// the lecture's (standard, batch), ordered by surname then name.
func GetTargetStudents(db *sql.DB, standard models.Standard, batch string) ([]*models.Admission, error) {
	query := "SELECT " + admissionColumns + ` FROM admissions
			  WHERE standard = $1 AND batch = $2 ORDER BY surname, name`

	rows, err := db.Query(query, standard, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch target students: %w", err)
	}
	defer rows.Close()

	var students []*models.Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, a)
	}
	return students, rows.Err()
}

// GetAdmissionsForExport returns every admission ordered by standard then
// name, the order used in the spreadsheet export.
func GetAdmissionsForExport(db *sql.DB) ([]*models.Admission, error) {
	query := "SELECT " + admissionColumns + " FROM admissions ORDER BY standard, name"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admissions: %w", err)
	}
	defer rows.Close()

	var admissions []*models.Admission
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, a)
	}
	return admissions, rows.Err()
}
