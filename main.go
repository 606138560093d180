package main

import (
	"os"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/routes/admissions"
	"super20-academy/app/routes/auth"
	"super20-academy/app/routes/dashboard"
	"super20-academy/app/routes/enquiries"
	"super20-academy/app/routes/exports"
	"super20-academy/app/routes/faculty"
	"super20-academy/app/routes/lectures"
	"super20-academy/app/routes/public"
	"super20-academy/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// customErrorHandler renders error pages for web requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Page Not Found - Super20 Academy",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	case fiber.StatusInternalServerError:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Server Error - Super20 Academy",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Super20 Academy",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	log, err := logger.FromEnv(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Getenv("LOG_OUTPUT"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := config.Init(); err != nil {
		log.Fatal("failed to initialize configuration", zap.Error(err))
	}
	defer config.GetDB().Close()
	log.Info("database connected")

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("migrations applied")

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	public.SetupPublicRoutes(app)
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app, log)
	enquiries.SetupEnquiriesRoutes(app)
	admissions.SetupAdmissionsRoutes(app)
	lectures.SetupLecturesRoutes(app)
	faculty.SetupFacultyRoutes(app, log)
	exports.SetupExportRoutes(app)

	addr := config.AppConfig.ListenAddr
	log.Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
