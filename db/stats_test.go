// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	entries := []Entry{
		newEntry("glucose", "Blood Glucose", Text("not fasting"), "", base.Add(4*time.Hour)),
		newEntry("glucose", "Blood Glucose", Numeric(90), "mg/dL", base.Add(3*time.Hour)),
		newEntry("glucose", "Blood Glucose", Numeric(5.1), "mmol/L", base.Add(2*time.Hour)),
		newEntry("glucose", "Blood Glucose", Numeric(110), "mg/dL", base.Add(time.Hour)),
		newEntry("glucose", "Blood Glucose", Numeric(70), "mg/dL", base),
	}

	stats := Summarize(entries)
	if stats.Count != 3 || stats.Unit != "mg/dL" {
		t.Fatalf("count/unit = %d %q", stats.Count, stats.Unit)
	}
	if stats.Latest == nil || stats.Latest != &entries[1] {
		t.Fatalf("latest = %+v", stats.Latest)
	}
	if stats.Min != 70 || stats.Max != 110 || stats.Average != 90 {
		t.Fatalf("min/max/avg = %v %v %v", stats.Min, stats.Max, stats.Average)
	}

	if empty := Summarize(nil); empty.Count != 0 || empty.Latest != nil {
		t.Fatalf("empty summary = %+v", empty)
	}
}
