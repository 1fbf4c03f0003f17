// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"
	"time"
)

func testContext() context.Context {
	return context.Background()
}

func stringPtr(value string) *string {
	return &value
}

func newEntry(code, name string, value Value, unit string, takenAt time.Time) Entry {
	e := Entry{
		BiomarkerName: name,
		Value:         value,
		TakenAt:       takenAt,
	}

	if code != "" {
		e.BiomarkerCode = stringPtr(code)
	}

	if unit != "" {
		e.Unit = stringPtr(unit)
	}

	return e
}

func mustInsert(t *testing.T, s Store, e Entry) int64 {
	t.Helper()

	id, err := s.Insert(testContext(), e)
	if err != nil {
		t.Fatalf("failed to insert entry: %v", err)
	}

	return id
}
