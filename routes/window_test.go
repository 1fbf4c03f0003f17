// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/humaidq/biolog/daterange"
)

func TestResolveWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "default preset",
			query:     "",
			wantStart: time.Date(2023, time.December, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "today",
			query:     "preset=today",
			wantStart: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:      "custom whole days",
			query:     "preset=custom&start=2024-01-01&end=2024-01-31",
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.January, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("failed to parse query: %v", err)
			}

			got, err := resolveWindow(query, testSettings())
			if err != nil {
				t.Fatalf("resolveWindow failed: %v", err)
			}

			if !got.Start.Equal(tt.wantStart) || !got.End.Equal(tt.wantEnd) {
				t.Fatalf("got %v – %v, want %v – %v", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveWindowErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  error
	}{
		{query: "preset=fortnight", want: daterange.ErrUnknownPreset},
		{query: "preset=custom", want: errMissingDateRange},
		{query: "preset=custom&start=2024-01-01", want: errMissingDateRange},
		{query: "preset=custom&start=01/01/2024&end=2024-01-31", want: errInvalidDate},
		{query: "preset=custom&start=2024-02-01&end=2024-01-31", want: daterange.ErrInvertedRange},
	}

	for _, tt := range tests {
		query, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("failed to parse query: %v", err)
		}

		if _, err := resolveWindow(query, testSettings()); !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.query, tt.want, err)
		}
	}
}

func TestResolveWindowUsesSettingsLocation(t *testing.T) {
	t.Parallel()

	dubai := time.FixedZone("GST", 4*60*60)
	settings := Settings{
		Location: dubai,
		// 22:00 UTC is already the next day in Dubai.
		Now: func() time.Time { return time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC) },
	}

	got, err := resolveWindow(url.Values{"preset": {"today"}}, settings)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}

	want := time.Date(2024, time.March, 16, 0, 0, 0, 0, dubai)
	if !got.Start.Equal(want) {
		t.Fatalf("expected window to start at %v, got %v", want, got.Start)
	}
}

func TestPresetOptions(t *testing.T) {
	t.Parallel()

	options := presetOptions(daterange.PresetWeek)
	if len(options) != len(daterange.Presets())+1 {
		t.Fatalf("expected relative presets plus custom, got %d", len(options))
	}

	for _, o := range options {
		if o.Selected != (o.Value == daterange.PresetWeek) {
			t.Fatalf("unexpected selection for %q", o.Value)
		}
	}

	if options[len(options)-1].Value != daterange.PresetCustom {
		t.Fatalf("expected custom last, got %q", options[len(options)-1].Value)
	}
}

func TestEntriesURL(t *testing.T) {
	t.Parallel()

	week, err := daterange.Resolve(daterange.PresetWeek, testNow)
	if err != nil {
		t.Fatalf("failed to resolve window: %v", err)
	}

	if got := entriesURL(week, "glucose"); got != "/entries?code=glucose&preset=week" {
		t.Fatalf("unexpected url %q", got)
	}

	custom, err := daterange.Custom(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("failed to build custom window: %v", err)
	}

	if got := entriesURL(custom, ""); got != "/entries?end=2024-01-02&preset=custom&start=2024-01-01" {
		t.Fatalf("unexpected url %q", got)
	}
}
