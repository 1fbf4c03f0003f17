// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package biomarkers

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	// New already validated, so rebuilding must succeed with the same size.
	rebuilt, err := New(c.All())
	if err != nil {
		t.Fatalf("rebuilding default catalog: %v", err)
	}
	if rebuilt.Len() != c.Len() {
		t.Fatalf("rebuilt catalog has %d definitions, want %d", rebuilt.Len(), c.Len())
	}

	seen := make(map[string]bool)
	for _, def := range c.All() {
		if seen[def.Code] {
			t.Fatalf("duplicate code %q", def.Code)
		}
		seen[def.Code] = true

		if def.Category == "" {
			t.Fatalf("%q has no category", def.Code)
		}
		if !def.HasUnit(def.PreferredUnit()) {
			t.Fatalf("%q preferred unit %q is not admissible", def.Code, def.PreferredUnit())
		}
	}
}

func TestDefaultCatalogStarterOrder(t *testing.T) {
	t.Parallel()

	want := []string{"weight", "height", "hr_rest", "spo2", "temp", "bp_systolic", "bp_diastolic", "glucose", "hba1c", "bmi"}
	all := Default().All()
	for i, code := range want {
		if all[i].Code != code {
			t.Fatalf("definition %d = %q, want %q", i, all[i].Code, code)
		}
	}
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	t.Parallel()

	valid := Definition{Code: "x", Name: "X", Units: units("u"), Category: CategoryGeneral}

	tests := []struct {
		name   string
		mutate func(d *Definition)
		want   error
	}{
		{name: "empty code", mutate: func(d *Definition) { d.Code = " " }, want: errEmptyCode},
		{name: "empty name", mutate: func(d *Definition) { d.Name = "" }, want: errEmptyName},
		{name: "no units", mutate: func(d *Definition) { d.Units = nil }, want: errNoUnits},
		{name: "unknown default unit", mutate: func(d *Definition) { d.DefaultUnit = "v" }, want: errUnknownDefaultUnit},
		{name: "inverted range", mutate: func(d *Definition) { d.Range = bounded(5, 1, "u") }, want: errInvertedRange},
		{name: "unknown range unit", mutate: func(d *Definition) { d.Range = bounded(1, 5, "v") }, want: errUnknownRangeUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := valid
			tt.mutate(&def)
			if _, err := New([]Definition{def}); !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New([]Definition{valid, valid}); !errors.Is(err, errDuplicateCode) {
		t.Fatalf("New() with duplicate code error = %v, want %v", err, errDuplicateCode)
	}
}

func TestByCodeAndByName(t *testing.T) {
	t.Parallel()

	c := Default()

	if _, ok := c.ByCode("unobtainium"); ok {
		t.Fatal("ByCode found an unknown code")
	}

	def, ok := c.ByCode("glucose")
	if !ok || def.Name != "Blood Glucose" {
		t.Fatalf("ByCode(glucose) = %+v, %v", def, ok)
	}

	tests := map[string]string{
		"blood glucose":             "glucose",
		"  Hemoglobin ":             "hemoglobin",
		"HbA1c":                     "hba1c",
		"Blood Pressure (Systolic)": "bp_systolic",
		"Fasting Blood Glucose":     "glucose",
	}
	for name, want := range tests {
		def, ok := c.ByName(name)
		if !ok || def.Code != want {
			t.Fatalf("ByName(%q) = %q, %v; want %q", name, def.Code, ok, want)
		}
	}

	code := "nope"
	if def, ok := c.Resolve(&code, "Weight"); !ok || def.Code != "weight" {
		t.Fatalf("Resolve fallback to name = %q, %v", def.Code, ok)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	all := c.All()
	all[0].Code = "mutated"

	if c.All()[0].Code == "mutated" {
		t.Fatal("All exposed the catalog's backing slice")
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	c := Default()
	categories := c.Categories()
	if !slices.IsSorted(categories) {
		t.Fatalf("categories not sorted: %v", categories)
	}
	if !slices.Contains(categories, CategoryHematology) {
		t.Fatalf("categories missing %q", CategoryHematology)
	}

	total := 0
	for _, category := range categories {
		defs := c.InCategory(category)
		if len(defs) == 0 {
			t.Fatalf("category %q is empty", category)
		}
		total += len(defs)
	}
	if total != c.Len() {
		t.Fatalf("categories cover %d definitions, want %d", total, c.Len())
	}
}

func TestReferenceRangeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    *ReferenceRange
		want string
	}{
		{r: nil, want: ""},
		{r: &ReferenceRange{}, want: ""},
		{r: bounded(70, 99, "mg/dL"), want: "70–99 mg/dL"},
		{r: &ReferenceRange{Low: ptr(36.1)}, want: "≥ 36.1"},
		{r: &ReferenceRange{High: ptr(0.04), Unit: "ng/mL"}, want: "≤ 0.04 ng/mL"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestUnitLabel(t *testing.T) {
	t.Parallel()

	def, _ := Default().ByCode("temp")
	if got := def.UnitLabel("C"); got != "°C" {
		t.Fatalf("UnitLabel(C) = %q", got)
	}
	if got := def.UnitLabel("K"); got != "K" {
		t.Fatalf("UnitLabel(K) = %q", got)
	}
}
