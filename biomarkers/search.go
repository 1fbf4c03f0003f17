/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSearchLimit is the limit callers use when none is requested.
const DefaultSearchLimit = 20

// fold lower-cases s for matching. A Caser keeps state, so each call gets
// its own.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Search returns definitions whose name, code or any alias contains the
// query, ignoring case, in declaration order. An empty query returns the
// first limit definitions. A limit of zero or less returns nothing.
func (c *Catalog) Search(query string, limit int) []Definition {
	if limit <= 0 {
		return []Definition{}
	}

	q := fold(strings.TrimSpace(query))

	results := make([]Definition, 0, min(limit, len(c.defs)))

	for i, def := range c.defs {
		if len(results) == limit {
			break
		}

		if q == "" || matchesAny(c.keys[i], q) {
			results = append(results, def)
		}
	}

	return results
}

func matchesAny(keys []string, q string) bool {
	for _, key := range keys {
		if strings.Contains(key, q) {
			return true
		}
	}

	return false
}
