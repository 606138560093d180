package faculty

import (
	"database/sql"
	"errors"
	"net/url"
	"time"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"
	"super20-academy/app/routes/auth"
	"super20-academy/app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var log *zap.Logger

func SetupFacultyRoutes(app *fiber.App, logger *zap.Logger) {
	log = logger.Named("faculty")

	faculty := app.Group("/faculty")
	faculty.Use(auth.RequireAuth)

	faculty.Get("/dashboard", DashboardPage)
	faculty.Get("/:id", auth.RequireStaff, ProfilePage)
	faculty.Post("/:id/rate", auth.RequireStaff, UpdateRateHandler)
	faculty.Post("/:id/payment", auth.RequireStaff, RecordPaymentHandler)
	faculty.Post("/:id/active", auth.RequireStaff, SetActiveHandler)
}

// DashboardPage shows the logged-in faculty their upcoming and recent
// lectures plus the current month's payment snapshot.
func DashboardPage(c *fiber.Ctx) error {
	p := auth.Principal(c)
	if !p.IsFaculty() {
		return c.Redirect("/dashboard")
	}
	db := config.GetDB()
	now := c.Context().Time()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	upcoming, err := database.GetUpcomingLectures(db, p.FacultyID, today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lectures")
	}
	past, err := database.GetPastLectures(db, p.FacultyID, today, 10)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lectures")
	}

	snapshot, err := services.CurrentSnapshot(db, p.FacultyID, now)
	if err != nil {
		log.Error("failed to build payment snapshot",
			zap.String("faculty_id", p.FacultyID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load payment")
	}

	return c.Render("faculty/dashboard", fiber.Map{
		"Title":            "My Dashboard - Super20 Academy",
		"CurrentPage":      "faculty",
		"UpcomingLectures": upcoming,
		"RecentLectures":   past,
		"Snapshot":         snapshot,
	})
}

// ProfilePage is the staff view of one faculty: current-month payment
// management plus a six-month history.
func ProfilePage(c *fiber.Ctx) error {
	db := config.GetDB()

	fac, err := database.GetFacultyByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load faculty")
	}

	snapshot, err := services.CurrentSnapshot(db, fac.ID, c.Context().Time())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load payment")
	}

	payments, err := database.GetPaymentHistory(db, fac.ID, 6)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load payment history")
	}
	history, err := services.SnapshotHistory(db, payments)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load payment history")
	}

	return c.Render("faculty/profile", fiber.Map{
		"Title":       fac.FullName + " - Super20 Academy",
		"CurrentPage": "faculty",
		"Faculty":     fac,
		"Snapshot":    snapshot,
		"History":     history,
		"Success":     c.Query("success"),
		"Error":       c.Query("error"),
	})
}

func redirectWithMessage(c *fiber.Ctx, facultyID, key, message string) error {
	return c.Redirect("/faculty/" + facultyID + "?" + key + "=" + url.QueryEscape(message))
}

// currentPayment resolves the faculty's payment row for the current month,
// creating it if this is the first touch.
func currentPayment(c *fiber.Ctx, facultyID string) (*models.Payment, error) {
	db := config.GetDB()
	if _, err := database.GetFacultyByID(db, facultyID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fiber.ErrNotFound
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load faculty")
	}
	payment, err := database.GetOrCreatePayment(db, facultyID, services.MonthStart(c.Context().Time()))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load payment")
	}
	return payment, nil
}

// UpdateRateHandler replaces the current month's per-lecture rate. Invalid or
// negative input leaves the stored value untouched.
func UpdateRateHandler(c *fiber.Ctx) error {
	facultyID := c.Params("id")
	payment, err := currentPayment(c, facultyID)
	if err != nil {
		return err
	}

	if err := services.UpdateRate(config.GetDB(), payment, c.FormValue("per_lecture_rate")); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrNegativeAmount) {
			return redirectWithMessage(c, facultyID, "error", "Invalid rate value.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update rate")
	}
	return redirectWithMessage(c, facultyID, "success", "Per-lecture rate updated.")
}

// RecordPaymentHandler adds the entered amount to the month's cumulative
// amount paid. Invalid or negative input leaves the stored value untouched.
func RecordPaymentHandler(c *fiber.Ctx) error {
	facultyID := c.Params("id")
	payment, err := currentPayment(c, facultyID)
	if err != nil {
		return err
	}

	if err := services.RecordPayment(config.GetDB(), payment, c.FormValue("amount")); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrNegativeAmount) {
			return redirectWithMessage(c, facultyID, "error", "Invalid payment amount.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to record payment")
	}
	return redirectWithMessage(c, facultyID, "success", "Payment recorded.")
}

// SetActiveHandler soft-enables or soft-disables a faculty login.
func SetActiveHandler(c *fiber.Ctx) error {
	facultyID := c.Params("id")
	active := c.FormValue("active") == "true"

	if err := database.SetFacultyActive(config.GetDB(), facultyID, active); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update faculty")
	}
	log.Info("faculty active flag changed",
		zap.String("faculty_id", facultyID), zap.Bool("active", active))
	return redirectWithMessage(c, facultyID, "success", "Faculty updated.")
}
