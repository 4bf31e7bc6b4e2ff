// Package excel writes the merged summary table to an .xlsx workbook.
// Cells are plain values; styling belongs to the downstream spreadsheet
// tooling, not here.
package excel

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/Nusri7/sopcalc/engine"
)

// SheetName is the sheet the summary table lands on.
const SheetName = "Summary"

var header = []string{"Metric", "Value", "Statement", "Column", "Source / Formula", "Manual"}

func build(rows []engine.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{row.Metric, row.Value, row.Statement, row.Column, row.SourceLine, row.Manual}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Write streams the summary workbook to a writer.
func Write(rows []engine.Row, w io.Writer) error {
	f, err := build(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Save writes the summary workbook to a file.
func Save(rows []engine.Row, path string) error {
	f, err := build(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("✓ Wrote %d metric rows to %s", len(rows), path)
	return nil
}
