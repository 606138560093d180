package lectures

import (
	"database/sql"
	"strings"
	"time"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"
	"super20-academy/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

const perPage = 20

func SetupLecturesRoutes(app *fiber.App) {
	lectures := app.Group("/lectures")
	lectures.Use(auth.RequireAuth)

	lectures.Get("/", ListPage)
	lectures.Get("/new", auth.RequireStaff, CreatePage)
	lectures.Post("/new", auth.RequireStaff, CreateHandler)
	lectures.Get("/:id", DetailPage)
	lectures.Get("/:id/edit", auth.RequireStaff, EditPage)
	lectures.Post("/:id/edit", auth.RequireStaff, UpdateHandler)
	lectures.Post("/:id/delete", auth.RequireStaff, DeleteHandler)
	lectures.Get("/:id/attendance", AttendancePage)
	lectures.Post("/:id/attendance", SubmitAttendanceHandler)
}

// ListPage renders lectures newest first. Staff see every lecture; faculty
// see only their own.
func ListPage(c *fiber.Ctx) error {
	p := auth.Principal(c)

	filters := database.LectureFilters{Query: c.Query("q")}
	if p.IsFaculty() {
		filters.FacultyID = p.FacultyID
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	filters.Limit = perPage
	filters.Offset = (page - 1) * perPage

	lectures, total, err := database.GetLectures(config.GetDB(), filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lectures")
	}
	pagination := models.NewPagination(page, perPage, total)

	return c.Render("lectures/index", fiber.Map{
		"Title":       "Lectures - Super20 Academy",
		"CurrentPage": "lectures",
		"Lectures":    lectures,
		"Pagination":  pagination,
		"Query":       filters.Query,
		"IsStaff":     p.IsStaff(),
	})
}

func renderForm(c *fiber.Ctx, lecture *models.Lecture, errs []string) error {
	faculties, err := database.GetActiveFaculties(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load faculties")
	}
	return c.Render("lectures/form", fiber.Map{
		"Title":           "Lecture - Super20 Academy",
		"CurrentPage":     "lectures",
		"Lecture":         lecture,
		"Faculties":       faculties,
		"StandardChoices": models.StandardChoices,
		"StandardLabels":  models.StandardLabels,
		"Errors":          errs,
	})
}

func CreatePage(c *fiber.Ctx) error {
	return renderForm(c, nil, nil)
}

// parseLectureForm reads and validates the shared create/edit form fields.
// End time is deliberately not checked against start time; inverted pairs
// exist in historical data and blocking them here would strand those rows.
func parseLectureForm(c *fiber.Ctx) (*models.Lecture, []string) {
	lecture := &models.Lecture{
		Title:     strings.TrimSpace(c.FormValue("title")),
		StartTime: c.FormValue("start_time"),
		EndTime:   c.FormValue("end_time"),
		Standard:  models.Standard(c.FormValue("standard")),
		Batch:     strings.TrimSpace(c.FormValue("batch")),
		FacultyID: c.FormValue("faculty_id"),
	}
	if desc := strings.TrimSpace(c.FormValue("description")); desc != "" {
		lecture.Description = &desc
	}

	var errs []string
	if lecture.Title == "" {
		errs = append(errs, "Title is required.")
	}
	if lecture.Batch == "" {
		errs = append(errs, "Batch is required.")
	}
	if _, ok := models.StandardLabels[lecture.Standard]; !ok {
		errs = append(errs, "Please select a valid standard.")
	}
	if lecture.StartTime == "" || lecture.EndTime == "" {
		errs = append(errs, "Start and end times are required.")
	}

	date, err := time.Parse("2006-01-02", c.FormValue("date"))
	if err != nil {
		errs = append(errs, "Date must be in YYYY-MM-DD format.")
	}
	lecture.Date = date

	if lecture.FacultyID == "" {
		errs = append(errs, "Please select a faculty.")
	} else if _, err := database.GetFacultyByID(config.GetDB(), lecture.FacultyID); err != nil {
		if err == sql.ErrNoRows {
			errs = append(errs, "Selected faculty does not exist.")
		} else {
			errs = append(errs, "Failed to verify faculty.")
		}
	}

	return lecture, errs
}

func CreateHandler(c *fiber.Ctx) error {
	lecture, errs := parseLectureForm(c)
	if len(errs) > 0 {
		return renderForm(c, lecture, errs)
	}

	if err := database.CreateLecture(config.GetDB(), lecture); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create lecture")
	}
	return c.Redirect("/lectures")
}

// loadAuthorizedLecture fetches the lecture and enforces the view rule: staff
// always, the assigned faculty otherwise. Other faculty are bounced to their
// dashboard rather than shown an error.
func loadAuthorizedLecture(c *fiber.Ctx) (*models.Lecture, error) {
	lecture, err := database.GetLectureByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load lecture")
	}

	p := auth.Principal(c)
	if !p.IsStaff() && lecture.FacultyID != p.FacultyID {
		return nil, c.Redirect("/faculty/dashboard")
	}
	return lecture, nil
}

// DetailPage shows the lecture with its target roster and any recorded
// attendance.
func DetailPage(c *fiber.Ctx) error {
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

	return c.Render("lectures/detail", fiber.Map{
		"Title":       lecture.Title + " - Super20 Academy",
		"CurrentPage": "lectures",
		"Lecture":     lecture,
		"Students":    roster,
		"Records":     records,
		"IsStaff":     auth.Principal(c).IsStaff(),
	})
}

func EditPage(c *fiber.Ctx) error {
	lecture, err := database.GetLectureByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lecture")
	}
	return renderForm(c, lecture, nil)
}

func UpdateHandler(c *fiber.Ctx) error {
	lecture, errs := parseLectureForm(c)
	lecture.ID = c.Params("id")
	if len(errs) > 0 {
		return renderForm(c, lecture, errs)
	}

	if err := database.UpdateLecture(config.GetDB(), lecture); err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update lecture")
	}
	return c.Redirect("/lectures/" + lecture.ID)
}

func DeleteHandler(c *fiber.Ctx) error {
	if err := database.DeleteLecture(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete lecture")
	}
	return c.Redirect("/lectures")
}
