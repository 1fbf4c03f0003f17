/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package export writes measurement entries to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
	"github.com/humaidq/biolog/logging"
)

var logger = logging.Logger(logging.SourceExport)

// SheetName is the worksheet holding the entries.
const SheetName = "Entries"

// TimeLayout formats measurement times in the workbook.
const TimeLayout = "2006-01-02 15:04"

// Header lists the workbook columns in order.
var Header = []string{
	"Taken At",
	"Biomarker",
	"Code",
	"Value",
	"Unit",
	"Status",
	"Reference Range",
	"Location",
	"Notes",
}

var columnWidths = []float64{18, 32, 16, 12, 12, 14, 22, 20, 40}

// WriteXLSX writes entries as a single-sheet workbook. Times are shown in
// loc and each row carries its reference range status from cat.
func WriteXLSX(w io.Writer, entries []db.Entry, cat *biomarkers.Catalog, loc *time.Location) error {
	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		row := entryRow(e, cat, loc)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Debug("Exported entries", "rows", len(entries))

	return nil
}

func writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	last, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}

	if err := f.SetCellStyle(SheetName, "A1", last+"1", style); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}

		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}

func entryRow(e db.Entry, cat *biomarkers.Catalog, loc *time.Location) []any {
	var value any = e.Value.String()
	if num, ok := e.Value.AsNumber(); ok {
		value = num
	}

	var reference string
	if def, ok := e.Definition(cat); ok {
		reference = def.Range.String()
	}

	return []any{
		e.TakenAt.In(loc).Format(TimeLayout),
		e.BiomarkerName,
		optional(e.BiomarkerCode),
		value,
		optional(e.Unit),
		e.Status(cat).Label(),
		reference,
		optional(e.Location),
		optional(e.Notes),
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
