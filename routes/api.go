/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/goccy/go-json"

	"github.com/humaidq/biolog/biomarkers"
)

// maxSearchLimit caps the limit a search request may ask for.
const maxSearchLimit = 100

type apiError struct {
	Error string `json:"error"`
}

type searchResponse struct {
	Query   string                  `json:"query"`
	Results []biomarkers.Definition `json:"results"`
}

type evaluateResponse struct {
	Code           string                     `json:"code"`
	Status         string                     `json:"status"`
	Label          string                     `json:"label"`
	ReferenceRange *biomarkers.ReferenceRange `json:"reference_range,omitempty"`
}

func writeJSON(c flamego.Context, status int, v interface{}) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Warn("Failed to write JSON response", "path", c.Request().URL.Path, "error", err)
	}
}

// SearchBiomarkersAPI returns catalog definitions matching q, for entry form
// autocompletion.
func SearchBiomarkersAPI(c flamego.Context, catalog *biomarkers.Catalog) {
	query := c.Query("q")

	limit := biomarkers.DefaultSearchLimit

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(c, http.StatusBadRequest, apiError{Error: "invalid limit"})
			return
		}

		limit = min(n, maxSearchLimit)
	}

	writeJSON(c, http.StatusOK, searchResponse{
		Query:   strings.TrimSpace(query),
		Results: catalog.Search(query, limit),
	})
}

// EvaluateAPI classifies a value against the reference range of a biomarker.
func EvaluateAPI(c flamego.Context, catalog *biomarkers.Catalog) {
	code := strings.TrimSpace(c.Query("code"))

	var value *float64

	if raw := strings.TrimSpace(c.Query("value")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			writeJSON(c, http.StatusBadRequest, apiError{Error: "invalid value"})
			return
		}

		value = &v
	}

	var unit *string
	if raw := strings.TrimSpace(c.Query("unit")); raw != "" {
		unit = &raw
	}

	var codePtr *string
	if code != "" {
		codePtr = &code
	}

	status := catalog.Evaluate(codePtr, value, unit)

	resp := evaluateResponse{
		Code:   code,
		Status: status.String(),
		Label:  status.Label(),
	}

	if def, ok := catalog.ByCode(code); ok {
		resp.ReferenceRange = def.Range
	}

	writeJSON(c, http.StatusOK, resp)
}
