// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/humaidq/biolog/daterange"
	"github.com/humaidq/biolog/db"
	"github.com/humaidq/biolog/export"
)

func TestExportWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)

	dubai, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	window, err := exportWindow("today", now, dubai)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 22:00 UTC is already the 16th in Dubai.
	if got := window.Start.Format(time.DateOnly); got != "2024-03-16" {
		t.Fatalf("expected window to start on 2024-03-16, got %s", got)
	}

	if _, err := exportWindow("fortnight", now, time.UTC); !errors.Is(err, daterange.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestExportEntriesWritesWorkbook(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	code := "glucose"
	unit := "mg/dL"

	for i, v := range []float64{85, 120} {
		_, err := store.Insert(ctx, db.Entry{
			BiomarkerCode: &code,
			BiomarkerName: "Blood Glucose",
			Value:         db.Numeric(v),
			Unit:          &unit,
			TakenAt:       now.Add(-time.Duration(i) * 24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to insert entry: %v", err)
		}
	}

	_, err := store.Insert(ctx, db.Entry{
		BiomarkerName: "Mood",
		Value:         db.Text("good"),
		TakenAt:       now,
	})
	if err != nil {
		t.Fatalf("failed to insert entry: %v", err)
	}

	window, err := exportWindow("week", now, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := filepath.Join(t.TempDir(), "entries.xlsx")
	if err := exportEntries(ctx, store, window, code, time.UTC, output); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	book, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows(export.SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header and two glucose rows, got %d rows", len(rows))
	}
}
