// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"testing"
	"time"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

func TestEntryFormEntryCodes(t *testing.T) {
	t.Parallel()

	catalog := biomarkers.Default()

	tests := []struct {
		name     string
		form     entryForm
		wantCode string
	}{
		{
			name:     "explicit code",
			form:     entryForm{BiomarkerName: "anything", BiomarkerCode: "weight"},
			wantCode: "weight",
		},
		{
			name:     "name lookup ignores case",
			form:     entryForm{BiomarkerName: "hemoglobin a1c"},
			wantCode: "hba1c",
		},
		{
			name:     "unknown code falls back to name",
			form:     entryForm{BiomarkerName: "Height", BiomarkerCode: "gone"},
			wantCode: "height",
		},
		{
			name:     "code outside the catalog is kept",
			form:     entryForm{BiomarkerName: "Retired Marker", BiomarkerCode: "retired_marker"},
			wantCode: "retired_marker",
		},
		{
			name: "free form",
			form: entryForm{BiomarkerName: "Sleep quality"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := tt.form
			form.Value = "7"
			form.TakenAt = "2024-03-15T08:00"

			e, err := form.entry(catalog, time.UTC)
			if err != nil {
				t.Fatalf("entry failed: %v", err)
			}

			if tt.wantCode == "" {
				if e.BiomarkerCode != nil {
					t.Fatalf("expected no code, got %q", *e.BiomarkerCode)
				}

				return
			}

			if e.BiomarkerCode == nil || *e.BiomarkerCode != tt.wantCode {
				t.Fatalf("expected code %q, got %v", tt.wantCode, e.BiomarkerCode)
			}
		})
	}
}

func TestEntryFormEntryUsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+4", 4*60*60)
	form := entryForm{BiomarkerName: "Weight", Value: "70", TakenAt: "2024-03-15T08:00"}

	e, err := form.entry(biomarkers.Default(), loc)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}

	want := time.Date(2024, time.March, 15, 4, 0, 0, 0, time.UTC)
	if !e.TakenAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, e.TakenAt)
	}

	if err := e.Validate(); err != nil {
		t.Fatalf("expected a valid entry, got %v", err)
	}
}

func TestEntryFormRoundTrip(t *testing.T) {
	t.Parallel()

	code := "glucose"
	unit := "mg/dL"
	location := "Home"

	e := db.Entry{
		BiomarkerCode: &code,
		BiomarkerName: "Blood Glucose",
		Value:         db.Numeric(92),
		Unit:          &unit,
		TakenAt:       time.Date(2024, time.March, 15, 6, 5, 0, 0, time.UTC),
		Location:      &location,
	}

	form := entryFormFrom(e, time.UTC)

	got, err := form.entry(biomarkers.Default(), time.UTC)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}

	if *got.BiomarkerCode != code || got.Value != e.Value || *got.Unit != unit || !got.TakenAt.Equal(e.TakenAt) {
		t.Fatalf("round trip changed the entry: %#v", got)
	}

	if got.Notes != nil {
		t.Fatalf("expected nil notes, got %q", *got.Notes)
	}
}

func TestFormErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := entryForm{Value: "1", TakenAt: "2024-03-15T08:00"}.entry(biomarkers.Default(), time.UTC)
	if got := formErrorMessage(err); got != "Biomarker is required" {
		t.Fatalf("unexpected message %q", got)
	}

	if got := formErrorMessage(errMissingValue); got != "Value is required" {
		t.Fatalf("unexpected message %q", got)
	}

	if got := formErrorMessage(errors.New("other")); got != "Invalid entry" {
		t.Fatalf("unexpected message %q", got)
	}
}
