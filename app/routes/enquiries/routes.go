package enquiries

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

func SetupEnquiriesRoutes(app *fiber.App) {
	enquiries := app.Group("/enquiries")
	enquiries.Use(auth.RequireAuth, auth.RequireStaff)
	enquiries.Get("/", ListPage)
	enquiries.Get("/:id/edit", EditPage)
	enquiries.Post("/:id/edit", UpdateHandler)
}

// ListPage renders the enquiry management list with search, status and date
// filters.
func ListPage(c *fiber.Ctx) error {
	filters := database.EnquiryFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	filters.Limit = perPage
	filters.Offset = (page - 1) * perPage

	enquiries, total, err := database.GetEnquiries(config.GetDB(), filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load enquiries")
	}
	pagination := models.NewPagination(page, perPage, total)

	return c.Render("enquiries/index", fiber.Map{
		"Title":         "Enquiries - Super20 Academy",
		"CurrentPage":   "enquiries",
		"Enquiries":     enquiries,
		"Pagination":    pagination,
		"Search":        filters.Search,
		"StatusFilter":  filters.Status,
		"DateFrom":      filters.DateFrom,
		"DateTo":        filters.DateTo,
		"StatusChoices": models.EnquiryStatusChoices,
		"StatusLabels":  models.EnquiryStatusLabels,
	})
}

// EditPage renders the staff enquiry update form.
func EditPage(c *fiber.Ctx) error {
	enquiry, err := database.GetEnquiryByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load enquiry")
	}

	return c.Render("enquiries/edit", fiber.Map{
		"Title":         "Edit Enquiry - Super20 Academy",
		"CurrentPage":   "enquiries",
		"Enquiry":       enquiry,
		"StatusChoices": models.EnquiryStatusChoices,
		"StatusLabels":  models.EnquiryStatusLabels,
	})
}

// UpdateHandler mutates the staff-editable enquiry fields: status, notes and
// follow-up date. Contact details and the enquiry date are immutable.
func UpdateHandler(c *fiber.Ctx) error {
	id := c.Params("id")

	status := models.EnquiryStatus(c.FormValue("status"))
	if _, ok := models.EnquiryStatusLabels[status]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	var notes *string
	if n := strings.TrimSpace(c.FormValue("notes")); n != "" {
		notes = &n
	}

	var followup *time.Time
	if raw := c.FormValue("followup_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "follow-up date must be in YYYY-MM-DD format")
		}
		followup = &parsed
	}

	if err := database.UpdateEnquiry(config.GetDB(), id, status, notes, followup); err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update enquiry")
	}
	return c.Redirect("/enquiries")
}
