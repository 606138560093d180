package exports

import (
	"bytes"
	"fmt"
	"time"

	"super20-academy/app/config"
	"super20-academy/app/database"
	"super20-academy/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func SetupExportRoutes(app *fiber.App) {
	exports := app.Group("/exports")
	exports.Use(auth.RequireAuth, auth.RequireStaff)
	exports.Get("/enquiries", ExportEnquiries)
	exports.Get("/admissions", ExportAdmissions)
}

// sheetStyles creates the shared title, header and body cell styles.
func sheetStyles(f *excelize.File) (title, header, body int, err error) {
	border := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}

	title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return
	}
	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return
	}
	body, err = f.NewStyle(&excelize.Style{Border: border})
	return
}

// writeSheet lays out the standard report: a merged title on row 1, headers on
// row 3, data from row 4, and column widths sized to content capped at 50.
func writeSheet(f *excelize.File, sheet, reportTitle string, headers []string, rows [][]interface{}) error {
	titleStyle, headerStyle, bodyStyle, err := sheetStyles(f)
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", reportTitle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle); err != nil {
		return err
	}

	widths := make([]int, len(headers))
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		widths[col] = len(header)
	}
	if err := f.SetCellStyle(sheet, "A3", lastCol+"3", headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if n := len(fmt.Sprint(value)); n > widths[col] {
				widths[col] = n
			}
		}
	}
	if len(rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(headers), len(rows)+3)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A4", lastCell, bodyStyle); err != nil {
			return err
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		w := width + 2
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(sheet, name, name, float64(w)); err != nil {
			return err
		}
	}
	return nil
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate spreadsheet")
	}

	c.Set("Content-Type", xlsxContentType)
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// ExportEnquiries streams every enquiry ordered by course then date.
func ExportEnquiries(c *fiber.Ctx) error {
	enquiries, err := database.GetEnquiriesForExport(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load enquiries")
	}

	now := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Enquiries Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate spreadsheet")
	}

	headers := []string{
		"ID", "Student Name", "Guardian Name", "Phone Number",
		"Preferred Course", "Enquiry Date", "Status", "Notes",
	}

	rows := make([][]interface{}, 0, len(enquiries))
	for _, e := range enquiries {
		notes := ""
		if e.Notes != nil {
			notes = *e.Notes
		}
		rows = append(rows, []interface{}{
			e.ID, e.StudentName, e.GuardianName, e.PhoneNumber,
			e.CourseDisplay(), e.EnquiryDate.Format("02/01/2006 15:04"),
			e.StatusDisplay(), notes,
		})
	}

	reportTitle := fmt.Sprintf("Super20 Academy - Enquiries Report (Generated on %s)",
		now.Format("02/01/2006 15:04"))
	if err := writeSheet(f, sheet, reportTitle, headers, rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate spreadsheet")
	}

	filename := fmt.Sprintf("Super20_Enquiries_%s.xlsx", now.Format("20060102_1504"))
	return sendWorkbook(c, f, filename)
}

// ExportAdmissions streams every admission ordered by standard then name.
func ExportAdmissions(c *fiber.Ctx) error {
	admissions, err := database.GetAdmissionsForExport(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load admissions")
	}

	now := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Admissions Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate spreadsheet")
	}

	headers := []string{
		"ID", "Full Name", "Standard", "Batch", "Stream", "Date of Birth", "Age",
		"Father Name", "Mother Name", "Mobile 1", "Mobile 2", "School/College",
	}

	rows := make([][]interface{}, 0, len(admissions))
	for _, a := range admissions {
		mobile2 := ""
		if a.Mobile2 != nil {
			mobile2 = *a.Mobile2
		}
		rows = append(rows, []interface{}{
			a.ID, a.FullName(), a.StandardDisplay(), a.Batch, a.StreamDisplay(),
			a.DateOfBirth.Format("02/01/2006"), a.Age(now),
			a.FatherName, a.MotherName, a.Mobile1, mobile2, a.SchoolCollege,
		})
	}

	reportTitle := fmt.Sprintf("Super20 Academy - Admissions Report (Generated on %s)",
		now.Format("02/01/2006 15:04"))
	if err := writeSheet(f, sheet, reportTitle, headers, rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate spreadsheet")
	}

	filename := fmt.Sprintf("Super20_Admissions_%s.xlsx", now.Format("20060102_1504"))
	return sendWorkbook(c, f, filename)
}
