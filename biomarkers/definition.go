/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"fmt"
	"strconv"
)

// Category groups biomarkers for browsing
type Category string

// Category values used by the built-in catalog.
const (
	CategoryVitalSigns   Category = "Vital Signs"
	CategoryBody         Category = "Body Measurements"
	CategoryMetabolic    Category = "Metabolic"
	CategoryHematology   Category = "Hematology"
	CategoryElectrolytes Category = "Electrolytes"
	CategoryKidney       Category = "Kidney Function"
	CategoryProtein      Category = "Protein"
	CategoryLiver        Category = "Liver Function"
	CategoryLipids       Category = "Lipids"
	CategoryThyroid      Category = "Thyroid"
	CategoryVitamins     Category = "Vitamins"
	CategoryMinerals     Category = "Minerals"
	CategoryHormones     Category = "Hormones"
	CategoryCardiac      Category = "Cardiac"
	CategoryInflammation Category = "Inflammation"
	CategoryCoagulation  Category = "Coagulation"
	CategoryUrinalysis   Category = "Urinalysis"
	CategoryTumorMarkers Category = "Tumor Markers"
	CategoryPancreatic   Category = "Pancreatic"
	CategoryGeneral      Category = "General"
	CategoryHeavyMetals  Category = "Heavy Metals"
	CategoryAutoimmune   Category = "Autoimmune"
)

// Unit is an admissible unit for a biomarker
type Unit struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ReferenceRange is the interval considered normal for a biomarker.
// Either bound may be nil for an open-ended range.
type ReferenceRange struct {
	Low  *float64 `json:"low,omitempty"`
	High *float64 `json:"high,omitempty"`
	Unit string   `json:"unit,omitempty"`
	Note string   `json:"note,omitempty"`
}

// Definition describes a known biomarker
type Definition struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Units       []Unit          `json:"units"`
	DefaultUnit string          `json:"default_unit,omitempty"`
	Range       *ReferenceRange `json:"reference_range,omitempty"`
	Aliases     []string        `json:"aliases,omitempty"`
	Category    Category        `json:"category"`
}

// PreferredUnit returns the unit pre-filled in entry forms.
func (d Definition) PreferredUnit() string {
	if d.DefaultUnit != "" {
		return d.DefaultUnit
	}

	if len(d.Units) > 0 {
		return d.Units[0].Code
	}

	return ""
}

// HasUnit reports whether code is one of the definition's units.
func (d Definition) HasUnit(code string) bool {
	for _, u := range d.Units {
		if u.Code == code {
			return true
		}
	}

	return false
}

// UnitLabel returns the display label for a unit code, falling back to the code.
func (d Definition) UnitLabel(code string) string {
	for _, u := range d.Units {
		if u.Code == code && u.Label != "" {
			return u.Label
		}
	}

	return code
}

// String renders the range as "low–high unit", "≥ low unit" or "≤ high unit".
func (r *ReferenceRange) String() string {
	if r == nil || (r.Low == nil && r.High == nil) {
		return ""
	}

	var s string

	switch {
	case r.Low != nil && r.High != nil:
		s = fmt.Sprintf("%s–%s", formatBound(*r.Low), formatBound(*r.High))
	case r.Low != nil:
		s = "≥ " + formatBound(*r.Low)
	default:
		s = "≤ " + formatBound(*r.High)
	}

	if r.Unit != "" {
		s += " " + r.Unit
	}

	return s
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
