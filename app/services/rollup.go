package services

import (
	"database/sql"
	"fmt"
	"strings"

	"super20-academy/app/database"
	"super20-academy/app/models"
)

// AttendanceMarks is an explicit mapping from student id to attendance
// status, validated against the lecture's target roster before any write.
type AttendanceMarks map[string]models.AttendanceStatus

// BuildMarks resolves the submitted per-student form fields against the
// roster. Students without a submitted value default to present; submitted
// ids outside the roster are dropped.
func BuildMarks(roster []*models.Admission, lookup func(studentID string) string) AttendanceMarks {
	marks := make(AttendanceMarks, len(roster))
	for _, student := range roster {
		status := models.Present
		if lookup(student.ID) == string(models.Absent) {
			status = models.Absent
		}
		marks[student.ID] = status
	}
	return marks
}

// RollupResult is the outcome of an attendance submission.
type RollupResult struct {
	PresentCount int
	Absentees    []*models.Admission
	Message      string
}

// SubmitAttendance upserts one attendance record per roster student and
// partitions the roster into present and absent. Resubmitting the same marks
// leaves exactly one record per (lecture, student) pair.
func SubmitAttendance(db *sql.DB, lecture *models.Lecture, roster []*models.Admission, marks AttendanceMarks, markedBy *string) (*RollupResult, error) {
	result := &RollupResult{}
	for _, student := range roster {
		status, ok := marks[student.ID]
		if !ok {
			status = models.Present
		}
		rec := &models.AttendanceRecord{
			LectureID: lecture.ID,
			StudentID: student.ID,
			Status:    status,
			MarkedBy:  markedBy,
		}
		if err := database.UpsertAttendance(db, rec); err != nil {
			return nil, err
		}
		if status == models.Absent {
			result.Absentees = append(result.Absentees, student)
		} else {
			result.PresentCount++
		}
	}
	result.Message = RollupMessage(lecture, result.Absentees)
	return result, nil
}

// RollupMessage formats the copyable notification for an attendance
// submission.
func RollupMessage(lecture *models.Lecture, absentees []*models.Admission) string {
	heading := fmt.Sprintf("%s (%s-%s) on %s",
		lecture.Title, lecture.StandardDisplay(), lecture.Batch, lecture.DateDisplay())

	if len(absentees) == 0 {
		return fmt.Sprintf("All students present for %s.", heading)
	}

	names := make([]string, len(absentees))
	for i, s := range absentees {
		names[i] = s.FullName()
	}
	return fmt.Sprintf("Absentees for %s: %s.", heading, strings.Join(names, ", "))
}
