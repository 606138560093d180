package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"super20-academy/app/models"
)

// LectureFilters represents filtering options for the lecture list. When
// FacultyID is set the list is restricted to that faculty's own lectures.
type LectureFilters struct {
	Query     string
	FacultyID string
	Limit     int
	Offset    int
}

func buildLectureWhere(f LectureFilters) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.FacultyID != "" {
		args = append(args, f.FacultyID)
		clauses = append(clauses, fmt.Sprintf("l.faculty_id = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(l.title ILIKE $%d OR l.description ILIKE $%d OR l.batch ILIKE $%d)", n, n, n))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

const lectureColumns = `l.id, l.title, l.description, l.date, l.start_time, l.end_time,
	l.standard, l.batch, l.faculty_id, l.created_at, l.updated_at, f.full_name`

func scanLecture(row interface{ Scan(...interface{}) error }) (*models.Lecture, error) {
	l := &models.Lecture{}
	var desc sql.NullString
	var facultyName string
	err := row.Scan(
		&l.ID, &l.Title, &desc, &l.Date, &l.StartTime, &l.EndTime,
		&l.Standard, &l.Batch, &l.FacultyID, &l.CreatedAt, &l.UpdatedAt, &facultyName,
	)
	if err != nil {
		return nil, err
	}
	if desc.Valid {
		l.Description = &desc.String
	}
	l.Faculty = &models.Faculty{ID: l.FacultyID, FullName: facultyName}
	return l, nil
}

// CreateLecture inserts a scheduled lecture.
func CreateLecture(db *sql.DB, l *models.Lecture) error {
	query := `INSERT INTO lectures (title, description, date, start_time, end_time, standard, batch, faculty_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		l.Title, l.Description, l.Date, l.StartTime, l.EndTime, l.Standard, l.Batch, l.FacultyID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lecture: %w", err)
	}
	return nil
}

// UpdateLecture replaces all editable lecture fields.
func UpdateLecture(db *sql.DB, l *models.Lecture) error {
	query := `UPDATE lectures
			  SET title = $1, description = $2, date = $3, start_time = $4, end_time = $5,
				  standard = $6, batch = $7, faculty_id = $8, updated_at = now()
			  WHERE id = $9`

	res, err := db.Exec(query,
		l.Title, l.Description, l.Date, l.StartTime, l.EndTime, l.Standard, l.Batch, l.FacultyID, l.ID)
	if err != nil {
		return fmt.Errorf("failed to update lecture: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteLecture removes a lecture and, via cascade, its attendance records.
func DeleteLecture(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM lectures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lecture: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetLectureByID(db *sql.DB, id string) (*models.Lecture, error) {
	query := "SELECT " + lectureColumns + ` FROM lectures l
			  JOIN faculties f ON f.id = l.faculty_id WHERE l.id = $1`
	return scanLecture(db.QueryRow(query, id))
}

// GetLectures returns one page of filtered lectures, newest first, plus the
// total row count for pagination.
func GetLectures(db *sql.DB, f LectureFilters) ([]*models.Lecture, int, error) {
	where, args := buildLectureWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM lectures l" + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count lectures: %w", err)
	}

	query := "SELECT " + lectureColumns + " FROM lectures l JOIN faculties f ON f.id = l.faculty_id" + where +
		fmt.Sprintf(" ORDER BY l.date DESC, l.start_time DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch lectures: %w", err)
	}
	defer rows.Close()

	var lectures []*models.Lecture
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, 0, err
		}
		lectures = append(lectures, l)
	}
	return lectures, total, rows.Err()
}

// GetUpcomingLectures returns a faculty's lectures dated today or later,
// soonest first.
func GetUpcomingLectures(db *sql.DB, facultyID string, today time.Time) ([]*models.Lecture, error) {
	query := "SELECT " + lectureColumns + ` FROM lectures l
			  JOIN faculties f ON f.id = l.faculty_id
			  WHERE l.faculty_id = $1 AND l.date >= $2
			  ORDER BY l.date, l.start_time`

	rows, err := db.Query(query, facultyID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lectures: %w", err)
	}
	defer rows.Close()

	var lectures []*models.Lecture
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, l)
	}
	return lectures, rows.Err()
}

// GetPastLectures returns a faculty's most recent past lectures.
func GetPastLectures(db *sql.DB, facultyID string, today time.Time, limit int) ([]*models.Lecture, error) {
	query := "SELECT " + lectureColumns + ` FROM lectures l
			  JOIN faculties f ON f.id = l.faculty_id
			  WHERE l.faculty_id = $1 AND l.date < $2
			  ORDER BY l.date DESC, l.start_time DESC LIMIT $3`

	rows, err := db.Query(query, facultyID, today, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lectures: %w", err)
	}
	defer rows.Close()

	var lectures []*models.Lecture
	for rows.Next() {
		l, err := scanLecture(rows)
		if err != nil {
			return nil, err
		}
		lectures = append(lectures, l)
	}
	return lectures, rows.Err()
}

// CountLecturesInRange counts a faculty's lectures dated within [from, to).
func CountLecturesInRange(db *sql.DB, facultyID string, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM lectures WHERE faculty_id = $1 AND date >= $2 AND date < $3`

	var count int
	if err := db.QueryRow(query, facultyID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lectures: %w", err)
	}
	return count, nil
}
