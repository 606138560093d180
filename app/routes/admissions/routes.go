package admissions

import (
	"database/sql"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"
	"super20-academy/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

const perPage = 20

func SetupAdmissionsRoutes(app *fiber.App) {
	admissions := app.Group("/admissions")
	admissions.Use(auth.RequireAuth, auth.RequireStaff)
	admissions.Get("/", ListPage)
	admissions.Get("/:id", DetailPage)
}

// ListPage renders the admission management list with search, standard, batch
// and date filters.
func ListPage(c *fiber.Ctx) error {
	filters := database.AdmissionFilters{
		Search:   c.Query("search"),
		Standard: c.Query("standard"),
		Batch:    c.Query("batch"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	filters.Limit = perPage
	filters.Offset = (page - 1) * perPage

	admissions, total, err := database.GetAdmissions(config.GetDB(), filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load admissions")
	}
	pagination := models.NewPagination(page, perPage, total)

	return c.Render("admissions/index", fiber.Map{
		"Title":           "Admissions - Super20 Academy",
		"CurrentPage":     "admissions",
		"Admissions":      admissions,
		"Pagination":      pagination,
		"Search":          filters.Search,
		"StandardFilter":  filters.Standard,
		"BatchFilter":     filters.Batch,
		"DateFrom":        filters.DateFrom,
		"DateTo":          filters.DateTo,
		"StandardChoices": models.StandardChoices,
		"StandardLabels":  models.StandardLabels,
	})
}

// DetailPage renders a single student profile.
func DetailPage(c *fiber.Ctx) error {
	admission, err := database.GetAdmissionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load admission")
	}

	return c.Render("admissions/detail", fiber.Map{
		"Title":       admission.FullName() + " - Super20 Academy",
		"CurrentPage": "admissions",
		"Admission":   admission,
	})
}
