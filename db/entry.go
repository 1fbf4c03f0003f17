/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/humaidq/biolog/biomarkers"
)

// Entry is one recorded measurement.
type Entry struct {
	ID            int64     `json:"id"`
	BiomarkerCode *string   `json:"biomarker_code"`
	BiomarkerName string    `json:"biomarker_name"`
	Value         Value     `json:"value"`
	Unit          *string   `json:"unit"`
	TakenAt       time.Time `json:"taken_at"`
	Location      *string   `json:"location"`
	Notes         *string   `json:"notes"`
}

// Validate checks the invariants every persisted entry must satisfy.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.BiomarkerName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, errMissingName)
	}

	if err := e.Value.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	if e.TakenAt.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, errMissingTakenAt)
	}

	return nil
}

// TakenAtMillis is the measurement time as stored.
func (e Entry) TakenAtMillis() int64 {
	return e.TakenAt.UnixMilli()
}

// Status evaluates the entry against the catalog. Text values are never
// evaluated.
func (e Entry) Status(c *biomarkers.Catalog) biomarkers.Status {
	num, ok := e.Value.AsNumber()
	if !ok {
		return biomarkers.StatusUnknown
	}

	return c.Evaluate(e.BiomarkerCode, &num, e.Unit)
}

// Definition returns the catalog definition the entry refers to, matching by
// code and falling back to the recorded name.
func (e Entry) Definition(c *biomarkers.Catalog) (biomarkers.Definition, bool) {
	return c.Resolve(e.BiomarkerCode, e.BiomarkerName)
}

// UnitOrEmpty returns the unit, or "" when none was recorded.
func (e Entry) UnitOrEmpty() string {
	if e.Unit == nil {
		return ""
	}

	return *e.Unit
}

func timeFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func derefFloat(f *float64) any {
	if f == nil {
		return nil
	}

	return *f
}
