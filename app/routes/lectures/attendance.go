package lectures

import (
	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/routes/auth"
	"super20-academy/app/services"

	"github.com/gofiber/fiber/v2"
)

// AttendancePage renders the per-student marking form for a lecture.
func AttendancePage(c *fiber.Ctx) error {
	lecture, err := loadAuthorizedLecture(c)
	if lecture == nil {
		return err
	}

	roster, err := database.GetTargetStudents(config.GetDB(), lecture.Standard, lecture.Batch)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load students")
	}
	records, err := database.GetAttendanceByLecture(config.GetDB(), lecture.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load attendance")
	}

	return c.Render("lectures/attendance", fiber.Map{
		"Title":       "Attendance: " + lecture.Title + " - Super20 Academy",
		"CurrentPage": "lectures",
		"Lecture":     lecture,
		"Students":    roster,
		"Records":     records,
	})
}

// SubmitAttendanceHandler upserts attendance for every student the lecture
// targets. Form fields are named student_<id> with values present or absent;
// unsubmitted students default to present. The result page carries the
// copyable absentee message.
func SubmitAttendanceHandler(c *fiber.Ctx) error {
	lecture, err := loadAuthorizedLecture(c)
	if lecture == nil {
		return err
	}

	roster, err := database.GetTargetStudents(config.GetDB(), lecture.Standard, lecture.Batch)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load students")
	}

	marks := services.BuildMarks(roster, func(studentID string) string {
		return c.FormValue("student_" + studentID)
	})

	var markedBy *string
	if p := auth.Principal(c); p.IsFaculty() {
		facultyID := p.FacultyID
		markedBy = &facultyID
	}

	result, err := services.SubmitAttendance(config.GetDB(), lecture, roster, marks, markedBy)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save attendance")
	}

	return c.Render("lectures/attendance_submitted", fiber.Map{
		"Title":        "Attendance Submitted - Super20 Academy",
		"CurrentPage":  "lectures",
		"Lecture":      lecture,
		"Message":      result.Message,
		"PresentCount": result.PresentCount,
		"AbsentCount":  len(result.Absentees),
	})
}
