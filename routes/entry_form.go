/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

// takenAtLayout matches the value of an HTML datetime-local input.
const takenAtLayout = "2006-01-02T15:04"

var validate = validator.New()

// entryForm is the raw entry form as submitted.
type entryForm struct {
	BiomarkerName string `validate:"required,max=200"`
	BiomarkerCode string `validate:"max=64"`
	Value         string `validate:"required,max=200"`
	Unit          string `validate:"max=32"`
	TakenAt       string `validate:"required,datetime=2006-01-02T15:04"`
	Location      string `validate:"max=200"`
	Notes         string `validate:"max=10000"`
}

func parseEntryForm(form url.Values) entryForm {
	return entryForm{
		BiomarkerName: strings.TrimSpace(form.Get("biomarker_name")),
		BiomarkerCode: strings.TrimSpace(form.Get("biomarker_code")),
		Value:         strings.TrimSpace(form.Get("value")),
		Unit:          strings.TrimSpace(form.Get("unit")),
		TakenAt:       strings.TrimSpace(form.Get("taken_at")),
		Location:      strings.TrimSpace(form.Get("location")),
		Notes:         strings.TrimSpace(form.Get("notes")),
	}
}

func entryFormFrom(e db.Entry, loc *time.Location) entryForm {
	f := entryForm{
		BiomarkerName: e.BiomarkerName,
		Value:         e.Value.String(),
		Unit:          e.UnitOrEmpty(),
		TakenAt:       e.TakenAt.In(loc).Format(takenAtLayout),
	}

	if e.BiomarkerCode != nil {
		f.BiomarkerCode = *e.BiomarkerCode
	}

	if e.Location != nil {
		f.Location = *e.Location
	}

	if e.Notes != nil {
		f.Notes = *e.Notes
	}

	return f
}

// entry validates the form and converts it into an entry. The biomarker code
// is taken from the form when the catalog knows it, otherwise it is resolved
// from the name, and left empty for free-form biomarkers.
func (f entryForm) entry(catalog *biomarkers.Catalog, loc *time.Location) (db.Entry, error) {
	if err := validate.Struct(f); err != nil {
		return db.Entry{}, err
	}

	takenAt, err := time.ParseInLocation(takenAtLayout, f.TakenAt, loc)
	if err != nil {
		return db.Entry{}, fmt.Errorf("%w: %w", errInvalidTakenAt, err)
	}

	value := db.ParseValue(f.Value)
	if !value.IsSet() {
		return db.Entry{}, errMissingValue
	}

	e := db.Entry{
		BiomarkerName: f.BiomarkerName,
		Value:         value,
		TakenAt:       takenAt,
		Unit:          optionalString(f.Unit),
		Location:      optionalString(f.Location),
		Notes:         optionalString(f.Notes),
	}

	var code *string
	if f.BiomarkerCode != "" {
		code = &f.BiomarkerCode
	}

	// A code the catalog no longer knows is kept as submitted.
	if def, ok := catalog.Resolve(code, f.BiomarkerName); ok {
		e.BiomarkerCode = &def.Code
	} else {
		e.BiomarkerCode = code
	}

	return e, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// formErrorMessage turns a validation failure into a flash message.
func formErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		switch {
		case errors.Is(err, errInvalidTakenAt):
			return "Measurement time is invalid"
		case errors.Is(err, errMissingValue):
			return "Value is required"
		default:
			return "Invalid entry"
		}
	}

	first := validationErrors[0]

	field := fieldLabels[first.Field()]
	if field == "" {
		field = first.Field()
	}

	switch first.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, first.Param())
	default:
		return field + " is invalid"
	}
}

var fieldLabels = map[string]string{
	"BiomarkerName": "Biomarker",
	"BiomarkerCode": "Biomarker code",
	"Value":         "Value",
	"Unit":          "Unit",
	"TakenAt":       "Measurement time",
	"Location":      "Location",
	"Notes":         "Notes",
}
