// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

type searchResult struct {
	Query   string `json:"query"`
	Results []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"results"`
}

type evaluateResult struct {
	Code           string `json:"code"`
	Status         string `json:"status"`
	Label          string `json:"label"`
	ReferenceRange *struct {
		Low  *float64 `json:"low"`
		High *float64 `json:"high"`
		Unit string   `json:"unit"`
	} `json:"reference_range"`
}

func TestSearchBiomarkersAPI(t *testing.T) {
	t.Parallel()

	app := newTestApp(failingStore{err: errTestBoom})
	rec := app.get(t, "/api/biomarkers/search?q=%20A1C%20")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var body searchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Query != "A1C" {
		t.Fatalf("expected trimmed query, got %q", body.Query)
	}

	if len(body.Results) == 0 || body.Results[0].Code != "hba1c" {
		t.Fatalf("expected hba1c first, got %#v", body.Results)
	}
}

func TestSearchBiomarkersAPILimit(t *testing.T) {
	t.Parallel()

	app := newTestApp(failingStore{err: errTestBoom})

	var body searchResult

	rec := app.get(t, "/api/biomarkers/search?limit=3")
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(body.Results))
	}

	rec = app.get(t, "/api/biomarkers/search")
	body = searchResult{}

	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Results) != 20 {
		t.Fatalf("expected the default limit, got %d", len(body.Results))
	}

	rec = app.get(t, "/api/biomarkers/search?limit=0")
	body = searchResult{}

	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Results) != 0 {
		t.Fatalf("expected no results for a zero limit, got %d", len(body.Results))
	}

	rec = app.get(t, "/api/biomarkers/search?limit=many")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a bad limit, got %d", rec.Code)
	}
}

func TestEvaluateAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		wantStatus string
		wantLabel  string
		wantRange  bool
	}{
		{query: "code=glucose&value=85&unit=mg/dL", wantStatus: "normal", wantLabel: "In range", wantRange: true},
		{query: "code=glucose&value=120&unit=mg/dL", wantStatus: "abnormal", wantLabel: "Out of range", wantRange: true},
		{query: "code=glucose&value=120&unit=mmol/L", wantStatus: "unknown", wantLabel: "No reference", wantRange: true},
		{query: "code=glucose&value=70", wantStatus: "normal", wantLabel: "In range", wantRange: true},
		{query: "code=glucose", wantStatus: "unknown", wantLabel: "No reference", wantRange: true},
		{query: "code=unknown&value=1", wantStatus: "unknown", wantLabel: "No reference"},
		{query: "value=1", wantStatus: "unknown", wantLabel: "No reference"},
	}

	app := newTestApp(failingStore{err: errTestBoom})

	for _, tt := range tests {
		rec := app.get(t, "/api/biomarkers/evaluate?"+tt.query)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", tt.query, rec.Code)
		}

		var body evaluateResult
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: failed to decode response: %v", tt.query, err)
		}

		if body.Status != tt.wantStatus || body.Label != tt.wantLabel {
			t.Fatalf("%s: got status %q label %q", tt.query, body.Status, body.Label)
		}

		if (body.ReferenceRange != nil) != tt.wantRange {
			t.Fatalf("%s: unexpected reference range %#v", tt.query, body.ReferenceRange)
		}
	}
}

func TestEvaluateAPIRejectsBadValue(t *testing.T) {
	t.Parallel()

	app := newTestApp(failingStore{err: errTestBoom})

	for _, value := range []string{"abc", "NaN", "Inf"} {
		rec := app.get(t, "/api/biomarkers/evaluate?code=glucose&value="+value)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("value %q: expected status 400, got %d", value, rec.Code)
		}
	}
}
