/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package daterange resolves named date windows such as "last 7 days" into
// concrete, inclusive time bounds.
package daterange

import "time"

// Range is an inclusive time window.
type Range struct {
	Start  time.Time
	End    time.Time
	Preset Preset
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Millisecond)
}

// Resolve computes the window for a relative preset, ending at the end of
// now's day. Days are calendar days in now's location, so a window spanning
// a DST change still starts at local midnight.
func Resolve(p Preset, now time.Time) (Range, error) {
	if p == PresetCustom {
		return Range{}, ErrCustomBounds
	}

	days, ok := lookbackDays[p]
	if !ok {
		return Range{}, ErrUnknownPreset
	}

	y, m, d := now.Date()

	return Range{
		Start:  time.Date(y, m, d-days, 0, 0, 0, 0, now.Location()),
		End:    EndOfDay(now),
		Preset: p,
	}, nil
}

// Custom builds a window from explicit bounds, unchanged.
func Custom(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, ErrInvertedRange
	}

	return Range{Start: start, End: end, Preset: PresetCustom}, nil
}

// EpochMillis returns the inclusive bounds as Unix milliseconds.
func (r Range) EpochMillis() (startMs, endMs int64) {
	return r.Start.UnixMilli(), r.End.UnixMilli()
}

// Contains reports whether t falls within the window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days the window touches.
func (r Range) Days() int {
	start := StartOfDay(r.Start)
	end := StartOfDay(r.End.In(r.Start.Location()))

	n := 1
	for start.Before(end) {
		start = start.AddDate(0, 0, 1)
		n++
	}

	return n
}
