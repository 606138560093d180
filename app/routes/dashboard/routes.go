package dashboard

import (
	"strings"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"
	"super20-academy/app/routes/auth"
	"super20-academy/app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var log *zap.Logger

func SetupDashboardRoutes(app *fiber.App, logger *zap.Logger) {
	log = logger.Named("dashboard")

	dash := app.Group("/dashboard")
	dash.Use(auth.RequireAuth, auth.RequireStaff)
	dash.Get("/", DashboardPage)
	dash.Post("/faculty", CreateFacultyHandler)
}

// facultyCard is one dashboard row: a faculty plus its current-month payment
// figures.
type facultyCard struct {
	Faculty  *models.Faculty
	Snapshot *models.PaymentSnapshot
}

// DashboardPage renders staff statistics, recent activity and current-month
// payment cards for the newest faculty profiles.
func DashboardPage(c *fiber.Ctx) error {
	db := config.GetDB()

	totalEnquiries, converted, err := database.CountEnquiries(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load statistics")
	}
	totalAdmissions, err := database.CountAdmissions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load statistics")
	}

	conversionRate := 0.0
	if totalEnquiries > 0 {
		conversionRate = float64(converted) / float64(totalEnquiries) * 100
	}

	recentEnquiries, err := database.GetRecentEnquiries(db, 5)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load enquiries")
	}
	recentAdmissions, err := database.GetRecentAdmissions(db, 5)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load admissions")
	}

	faculties, err := database.GetRecentFaculties(db, 10)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load faculties")
	}

	now := c.Context().Time()
	cards := make([]facultyCard, 0, len(faculties))
	for _, f := range faculties {
		snapshot, err := services.CurrentSnapshot(db, f.ID, now)
		if err != nil {
			log.Error("failed to build payment snapshot",
				zap.String("faculty_id", f.ID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load payments")
		}
		cards = append(cards, facultyCard{Faculty: f, Snapshot: snapshot})
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":            "Dashboard - Super20 Academy",
		"CurrentPage":      "dashboard",
		"TotalEnquiries":   totalEnquiries,
		"TotalAdmissions":  totalAdmissions,
		"Converted":        converted,
		"ConversionRate":   conversionRate,
		"RecentEnquiries":  recentEnquiries,
		"RecentAdmissions": recentAdmissions,
		"FacultyCards":     cards,
		"Success":          c.Query("success"),
		"Error":            c.Query("error"),
	})
}

// CreateFacultyHandler quick-creates a faculty login and profile from the
// dashboard form.
func CreateFacultyHandler(c *fiber.Ctx) error {
	db := config.GetDB()

	fullName := strings.TrimSpace(c.FormValue("full_name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	phone := strings.TrimSpace(c.FormValue("phone_number"))

	if fullName == "" || email == "" || password == "" {
		return c.Redirect("/dashboard?error=Full+name,+email+and+password+are+required")
	}

	exists, err := database.EmailExists(db, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check email")
	}
	if exists {
		return c.Redirect("/dashboard?error=Email+already+exists")
	}

	user := &models.User{Email: email, Password: password, FullName: fullName}
	faculty := &models.Faculty{FullName: fullName}
	if phone != "" {
		faculty.PhoneNumber = &phone
	}

	if err := database.CreateFacultyWithUser(db, user, faculty); err != nil {
		log.Error("failed to create faculty", zap.String("email", email), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create faculty")
	}

	log.Info("faculty created", zap.String("faculty_id", faculty.ID), zap.String("email", email))
	return c.Redirect("/dashboard?success=Faculty+created")
}
