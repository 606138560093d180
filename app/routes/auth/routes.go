package auth

import (
	"database/sql"
	"time"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginHandler)
	auth.Get("/faculty-login", ShowFacultyLoginPage)
	auth.Post("/faculty-login", FacultyLoginHandler)
	auth.Post("/logout", LogoutHandler)

	// Protected routes
	auth.Use(RequireAuth)
	auth.Post("/change-password", ChangePasswordHandler)
}

// Principal returns the authenticated identity set by RequireAuth, or an
// anonymous principal when the request carries no valid session.
func Principal(c *fiber.Ctx) *models.Principal {
	if p, ok := c.Locals("principal").(*models.Principal); ok {
		return p
	}
	return &models.Principal{Role: models.RoleAnonymous}
}

// RequireAuth validates the session cookie and stores the principal in the
// request locals. Unauthenticated web requests are redirected to the staff
// login page.
func RequireAuth(c *fiber.Ctx) error {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Redirect("/auth/login")
	}

	c.Locals("principal", &models.Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		FullName:  claims.FullName,
		Role:      claims.Role,
		FacultyID: claims.FacultyID,
	})
	return c.Next()
}

// RequireStaff gates staff-only routes. Non-staff principals are sent to a
// safe default page instead of an error.
func RequireStaff(c *fiber.Ctx) error {
	p := Principal(c)
	if !p.IsStaff() {
		if p.IsFaculty() {
			return c.Redirect("/faculty/dashboard")
		}
		return c.Redirect("/")
	}
	return c.Next()
}

func ShowLoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies(sessionCookie); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			if claims.Role == models.RoleStaff {
				return c.Redirect("/dashboard")
			}
			return c.Redirect("/faculty/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Staff Login - Super20 Academy",
	})
}

func ShowFacultyLoginPage(c *fiber.Ctx) error {
	return c.Render("auth/faculty_login", fiber.Map{
		"Title": "Faculty Login - Super20 Academy",
	})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// LoginHandler authenticates a staff account and starts a session.
func LoginHandler(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := database.GetUserByEmail(config.GetDB(), email)
	if err != nil || !CheckPasswordHash(password, user.Password) || !user.IsStaff {
		return c.Render("auth/login", fiber.Map{
			"Title": "Staff Login - Super20 Academy",
			"Error": "Invalid credentials or insufficient permissions.",
			"Email": email,
		})
	}

	token, err := GenerateJWT(&models.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     models.RoleStaff,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to start session")
	}

	setSessionCookie(c, token)
	return c.Redirect("/dashboard")
}

// FacultyLoginHandler authenticates a faculty account. Soft-disabled faculty
// profiles cannot log in.
func FacultyLoginHandler(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	renderError := func() error {
		return c.Render("auth/faculty_login", fiber.Map{
			"Title": "Faculty Login - Super20 Academy",
			"Error": "Invalid faculty credentials or account inactive.",
			"Email": email,
		})
	}

	user, err := database.GetUserByEmail(config.GetDB(), email)
	if err != nil || !CheckPasswordHash(password, user.Password) {
		return renderError()
	}

	faculty, err := database.GetFacultyByUserID(config.GetDB(), user.ID)
	if err != nil || !faculty.IsActive {
		return renderError()
	}

	token, err := GenerateJWT(&models.Principal{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  faculty.FullName,
		Role:      models.RoleFaculty,
		FacultyID: faculty.ID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to start session")
	}

	setSessionCookie(c, token)
	return c.Redirect("/faculty/dashboard")
}

func LogoutHandler(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/")
}

// ChangePasswordHandler lets an authenticated account replace its password
// after confirming the current one.
func ChangePasswordHandler(c *fiber.Ctx) error {
	p := Principal(c)
	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")

	user, err := database.GetUserByEmail(config.GetDB(), p.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "database error")
	}

	if !CheckPasswordHash(current, user.Password) {
		return c.Render("auth/profile", fiber.Map{
			"Title": "Profile - Super20 Academy",
			"Error": "Current password is incorrect.",
		})
	}

	hashed, err := database.HashPassword(newPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update password")
	}

	return c.Render("auth/profile", fiber.Map{
		"Title":   "Profile - Super20 Academy",
		"Success": "Password changed successfully.",
	})
}
