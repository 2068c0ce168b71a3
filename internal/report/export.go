package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hongminglow/field-checkin/internal/models"
)

const (
	teamSheet     = "Team Summary"
	employeeSheet = "Employees"
)

// WriteXLSX renders summary as an Excel workbook with a team sheet and a
// per-employee sheet.
func WriteXLSX(w io.Writer, summary models.DailySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", teamSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	teamRows := [][]any{
		{"Date", summary.Date},
		{"Total check-ins", summary.TeamSummary.TotalCheckins},
		{"Total hours", summary.TeamSummary.TotalHours},
		{"Active employees", summary.TeamSummary.ActiveEmployees},
		{"Unique clients", summary.TeamSummary.TotalUniqueClients},
	}
	for i, row := range teamRows {
		if err := setRow(f, teamSheet, i+1, row); err != nil {
			return err
		}
	}
	if err := setWidths(f, teamSheet, colWidth{"A", "A", 20}, colWidth{"B", "B", 14}); err != nil {
		return err
	}

	if _, err := f.NewSheet(employeeSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	header := []any{"Employee ID", "Employee", "Check-ins", "Clients visited", "Hours"}
	if err := setRow(f, employeeSheet, 1, header); err != nil {
		return err
	}
	for i, e := range summary.EmployeeBreakdown {
		row := []any{e.EmployeeID, e.EmployeeName, e.TotalCheckins, e.ClientsVisitedCount, e.TotalHours}
		if err := setRow(f, employeeSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := setWidths(f, employeeSheet, colWidth{"A", "A", 12}, colWidth{"B", "B", 28}, colWidth{"C", "E", 16}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// FileName is the attachment name for an exported summary.
func FileName(summary models.DailySummary) string {
	return fmt.Sprintf("daily-summary-%s.xlsx", summary.Date)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

type colWidth struct {
	from, to string
	width    float64
}

func setWidths(f *excelize.File, sheet string, widths ...colWidth) error {
	for _, c := range widths {
		if err := f.SetColWidth(sheet, c.from, c.to, c.width); err != nil {
			return fmt.Errorf("set %s width %s:%s: %w", sheet, c.from, c.to, err)
		}
	}
	return nil
}
