package database

import (
	"database/sql"
	"fmt"

	"super20-academy/app/models"
)

// UpsertAttendance inserts or updates the attendance record for one
// (lecture, student) pair. The unique constraint is authoritative: concurrent
// submissions for the same pair collapse into one row with the latest status.
func UpsertAttendance(db *sql.DB, rec *models.AttendanceRecord) error {
	query := `INSERT INTO attendance_records (lecture_id, student_id, status, marked_by, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (lecture_id, student_id)
			  DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by,
				  notes = EXCLUDED.notes, marked_at = now()
			  RETURNING id, marked_at`

	err := db.QueryRow(query, rec.LectureID, rec.StudentID, rec.Status, rec.MarkedBy, rec.Notes).
		Scan(&rec.ID, &rec.MarkedAt)
	if err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}

// GetAttendanceByLecture returns the lecture's attendance records keyed by
// student id, for joining onto the roster.
func GetAttendanceByLecture(db *sql.DB, lectureID string) (map[string]*models.AttendanceRecord, error) {
	query := `SELECT id, lecture_id, student_id, status, marked_by, marked_at, notes
			  FROM attendance_records WHERE lecture_id = $1`

	rows, err := db.Query(query, lectureID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer rows.Close()

	records := make(map[string]*models.AttendanceRecord)
	for rows.Next() {
		rec := &models.AttendanceRecord{}
		var markedBy, notes sql.NullString
		err := rows.Scan(&rec.ID, &rec.LectureID, &rec.StudentID, &rec.Status, &markedBy, &rec.MarkedAt, &notes)
		if err != nil {
			return nil, err
		}
		if markedBy.Valid {
			rec.MarkedBy = &markedBy.String
		}
		if notes.Valid {
			rec.Notes = &notes.String
		}
		records[rec.StudentID] = rec
	}
	return records, rows.Err()
}
