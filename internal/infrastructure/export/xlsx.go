// Package export renders report data into downloadable files.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"vendia/internal/domain/reporting"
)

const salesSheet = "Sales"

var salesHeaders = []string{"Number", "Date", "Subtotal", "Discount", "Total", "Status"}

// SalesXLSX writes the report rows as an XLSX workbook with a header
// row, one row per sale, and a totals row at the bottom.
func SalesXLSX(w io.Writer, report *reporting.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(salesSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, header := range salesHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(salesSheet, cell, header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
		if err := f.SetCellStyle(salesSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for i, row := range report.Rows {
		values := []any{
			row.Number,
			row.Date.Format(time.DateOnly),
			row.Subtotal.InexactFloat64(),
			row.Discount.InexactFloat64(),
			row.Total.InexactFloat64(),
			row.Status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(salesSheet, cell, value); err != nil {
				return fmt.Errorf("set cell: %w", err)
			}
		}
	}

	totalsRow := len(report.Rows) + 2
	totalCell, err := excelize.CoordinatesToCellName(1, totalsRow)
	if err != nil {
		return fmt.Errorf("totals cell: %w", err)
	}
	if err := f.SetCellValue(salesSheet, totalCell, "Total"); err != nil {
		return fmt.Errorf("set totals label: %w", err)
	}
	if err := f.SetCellStyle(salesSheet, totalCell, totalCell, headerStyle); err != nil {
		return fmt.Errorf("style totals label: %w", err)
	}
	sumCell, err := excelize.CoordinatesToCellName(5, totalsRow)
	if err != nil {
		return fmt.Errorf("totals sum cell: %w", err)
	}
	if err := f.SetCellValue(salesSheet, sumCell, report.Summary.Sum.InexactFloat64()); err != nil {
		return fmt.Errorf("set totals sum: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
