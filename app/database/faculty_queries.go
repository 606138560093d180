package database

import (
	"database/sql"
	"fmt"

	"super20-academy/app/models"
)

func scanFaculty(row interface{ Scan(...interface{}) error }) (*models.Faculty, error) {
	f := &models.Faculty{}
	var phone sql.NullString
	err := row.Scan(&f.ID, &f.UserID, &f.FullName, &phone, &f.IsActive, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		f.PhoneNumber = &phone.String
	}
	return f, nil
}

func GetFacultyByID(db *sql.DB, facultyID string) (*models.Faculty, error) {
	query := `SELECT id, user_id, full_name, phone_number, is_active, created_at
			  FROM faculties WHERE id = $1`
	return scanFaculty(db.QueryRow(query, facultyID))
}

func GetFacultyByUserID(db *sql.DB, userID string) (*models.Faculty, error) {
	query := `SELECT id, user_id, full_name, phone_number, is_active, created_at
			  FROM faculties WHERE user_id = $1`
	return scanFaculty(db.QueryRow(query, userID))
}

// GetActiveFaculties returns active faculty ordered by name, for lecture
// assignment dropdowns.
func GetActiveFaculties(db *sql.DB) ([]*models.Faculty, error) {
	query := `SELECT id, user_id, full_name, phone_number, is_active, created_at
			  FROM faculties WHERE is_active = true ORDER BY full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// GetRecentFaculties returns the most recently created faculty profiles for
// the staff dashboard.
func GetRecentFaculties(db *sql.DB, limit int) ([]*models.Faculty, error) {
	query := `SELECT id, user_id, full_name, phone_number, is_active, created_at
			  FROM faculties ORDER BY created_at DESC LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

// CreateFacultyWithUser creates the login account and the linked faculty
// profile in one transaction.
func CreateFacultyWithUser(db *sql.DB, user *models.User, faculty *models.Faculty) error {
	hashed, err := HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO users (email, password, full_name, is_staff, is_active)
		 VALUES ($1, $2, $3, false, true)
		 RETURNING id, created_at, updated_at`,
		user.Email, hashed, user.FullName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	faculty.UserID = user.ID
	err = tx.QueryRow(
		`INSERT INTO faculties (user_id, full_name, phone_number, is_active)
		 VALUES ($1, $2, $3, true)
		 RETURNING id, created_at`,
		user.ID, faculty.FullName, faculty.PhoneNumber,
	).Scan(&faculty.ID, &faculty.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faculty: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	faculty.IsActive = true
	return nil
}

// SetFacultyActive soft-enables or soft-disables a faculty profile and its
// login account together.
func SetFacultyActive(db *sql.DB, facultyID string, active bool) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE faculties SET is_active = $1 WHERE id = $2`, active, facultyID); err != nil {
		return fmt.Errorf("failed to update faculty: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE users SET is_active = $1, updated_at = now()
		 WHERE id = (SELECT user_id FROM faculties WHERE id = $2)`, active, facultyID); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return tx.Commit()
}
