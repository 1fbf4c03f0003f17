/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"fmt"
	"strings"

	"github.com/humaidq/biolog/daterange"
)

// Filter narrows a Query. Nil fields do not constrain; bounds are inclusive
// epoch milliseconds.
type Filter struct {
	BiomarkerCode *string
	StartMs       *int64
	EndMs         *int64
}

// Window returns a copy of the filter bounded by r.
func (f Filter) Window(r daterange.Range) Filter {
	start, end := r.EpochMillis()
	f.StartMs = &start
	f.EndMs = &end

	return f
}

// ForCode returns a copy of the filter restricted to one biomarker.
func (f Filter) ForCode(code string) Filter {
	if code == "" {
		f.BiomarkerCode = nil
		return f
	}

	f.BiomarkerCode = &code

	return f
}

// where renders the filter as a WHERE clause using placeholder(n) for the
// n-th (1-based) argument.
func (f Filter) where(placeholder func(n int) string) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, placeholder(len(args))))
	}

	if f.BiomarkerCode != nil {
		add("biomarker_code = %s", *f.BiomarkerCode)
	}

	if f.StartMs != nil {
		add("taken_at >= %s", *f.StartMs)
	}

	if f.EndMs != nil {
		add("taken_at <= %s", *f.EndMs)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func dollarPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func questionPlaceholder(int) string {
	return "?"
}
