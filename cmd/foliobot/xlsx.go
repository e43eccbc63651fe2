package main

import (
	"github.com/xuri/excelize/v2"
)

// exportVisit mirrors the visit record shape the API returns.
type exportVisit struct {
	ID        string `json:"id"`
	IP        string `json:"ip"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Region    string `json:"region"`
	UserAgent string `json:"user_agent"`
	Page      string `json:"page"`
	VisitedAt string `json:"visited_at"`
}

// writeVisitsXLSX writes the visit log to an .xlsx workbook with a single
// "Visits" sheet, header row first.
func writeVisitsXLSX(path string, visits []exportVisit) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Visits"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"ID", "IP", "Country", "City", "Region", "Page", "User Agent", "Visited At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, v := range visits {
		values := []any{v.ID, v.IP, v.Country, v.City, v.Region, v.Page, v.UserAgent, v.VisitedAt}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
