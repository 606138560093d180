package public

import (
	"strings"
	"time"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupPublicRoutes(app *fiber.App) {
	app.Get("/", HomePage)
	app.Get("/about", AboutPage)
	app.Get("/contact", ContactPage)
	app.Get("/enquiry", ShowEnquiryForm)
	app.Post("/enquiry", SubmitEnquiry)
	app.Get("/admission", ShowAdmissionForm)
	app.Post("/admission", SubmitAdmission)
}

func HomePage(c *fiber.Ctx) error {
	return c.Render("public/home", fiber.Map{
		"Title":   "Super20 Academy",
		"Success": c.Query("success"),
	})
}

func AboutPage(c *fiber.Ctx) error {
	return c.Render("public/about", fiber.Map{
		"Title": "About Us - Super20 Academy",
	})
}

func ContactPage(c *fiber.Ctx) error {
	return c.Render("public/contact", fiber.Map{
		"Title": "Contact - Super20 Academy",
	})
}

func ShowEnquiryForm(c *fiber.Ctx) error {
	return c.Render("public/enquiry_form", fiber.Map{
		"Title":   "Enquiry - Super20 Academy",
		"Courses": models.CourseChoices,
		"Labels":  models.CourseLabels,
	})
}

// SubmitEnquiry stores a public enquiry. The status starts as in_process and
// the enquiry date is set by the database.
func SubmitEnquiry(c *fiber.Ctx) error {
	enquiry := &models.Enquiry{
		StudentName:     strings.TrimSpace(c.FormValue("student_name")),
		GuardianName:    strings.TrimSpace(c.FormValue("guardian_name")),
		PhoneNumber:     strings.TrimSpace(c.FormValue("phone_number")),
		PreferredCourse: models.Course(c.FormValue("preferred_course")),
	}

	var errs []string
	if enquiry.StudentName == "" {
		errs = append(errs, "Student name is required.")
	}
	if enquiry.GuardianName == "" {
		errs = append(errs, "Guardian name is required.")
	}
	if enquiry.PhoneNumber == "" {
		errs = append(errs, "Phone number is required.")
	}
	if _, ok := models.CourseLabels[enquiry.PreferredCourse]; !ok {
		errs = append(errs, "Please select a valid course.")
	}

	if len(errs) > 0 {
		return c.Render("public/enquiry_form", fiber.Map{
			"Title":   "Enquiry - Super20 Academy",
			"Courses": models.CourseChoices,
			"Labels":  models.CourseLabels,
			"Errors":  errs,
			"Form":    enquiry,
		})
	}

	if err := database.CreateEnquiry(config.GetDB(), enquiry); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save enquiry")
	}
	return c.Redirect("/?success=enquiry")
}

func ShowAdmissionForm(c *fiber.Ctx) error {
	return c.Render("public/admission_form", fiber.Map{
		"Title":     "Admission - Super20 Academy",
		"Standards": models.StandardChoices,
		"Labels":    models.StandardLabels,
		"Streams":   []models.Stream{models.Science, models.Commerce, models.Arts},
	})
}

// SubmitAdmission stores a public admission submission.
func SubmitAdmission(c *fiber.Ctx) error {
	admission := &models.Admission{
		Surname:            strings.TrimSpace(c.FormValue("surname")),
		Name:               strings.TrimSpace(c.FormValue("name")),
		Middlename:         strings.TrimSpace(c.FormValue("middlename")),
		ContactNumber:      strings.TrimSpace(c.FormValue("contact_number")),
		Mobile1:            strings.TrimSpace(c.FormValue("mobile_1")),
		MotherName:         strings.TrimSpace(c.FormValue("mother_name")),
		FatherName:         strings.TrimSpace(c.FormValue("father_name")),
		FatherOccupation:   strings.TrimSpace(c.FormValue("father_occupation")),
		Standard:           models.Standard(c.FormValue("standard")),
		Batch:              strings.TrimSpace(c.FormValue("batch")),
		SchoolCollege:      strings.TrimSpace(c.FormValue("school_college")),
		PreviousPercentage: strings.TrimSpace(c.FormValue("previous_percentage")),
		Stream:             models.Stream(c.FormValue("stream")),
	}
	if mobile2 := strings.TrimSpace(c.FormValue("mobile_2")); mobile2 != "" {
		admission.Mobile2 = &mobile2
	}

	var errs []string
	if admission.Surname == "" || admission.Name == "" {
		errs = append(errs, "Surname and name are required.")
	}
	if admission.Mobile1 == "" {
		errs = append(errs, "Primary mobile number is required.")
	}
	if _, ok := models.StandardLabels[admission.Standard]; !ok {
		errs = append(errs, "Please select a valid standard.")
	}
	if admission.Stream != "" {
		if _, ok := models.StreamLabels[admission.Stream]; !ok {
			errs = append(errs, "Please select a valid stream.")
		}
	}

	dob, err := time.Parse("2006-01-02", c.FormValue("date_of_birth"))
	if err != nil {
		errs = append(errs, "Date of birth must be in YYYY-MM-DD format.")
	}
	admission.DateOfBirth = dob

	if admission.PreviousPercentage == "" {
		admission.PreviousPercentage = "0"
	}

	if len(errs) > 0 {
		return c.Render("public/admission_form", fiber.Map{
			"Title":     "Admission - Super20 Academy",
			"Standards": models.StandardChoices,
			"Labels":    models.StandardLabels,
			"Streams":   []models.Stream{models.Science, models.Commerce, models.Arts},
			"Errors":    errs,
			"Form":      admission,
		})
	}

	if err := database.CreateAdmission(config.GetDB(), admission); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save admission")
	}
	return c.Redirect("/?success=admission")
}
