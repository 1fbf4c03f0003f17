/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package daterange

import (
	"fmt"
	"strings"
)

// Preset names a date window relative to now.
type Preset string

// Supported presets.
const (
	PresetToday       Preset = "today"
	PresetWeek        Preset = "week"
	PresetLast3Months Preset = "last3months"
	PresetLast6Months Preset = "last6months"
	PresetLastYear    Preset = "lastyear"
	PresetCustom      Preset = "custom"
)

// DefaultPreset is used when a request names no preset.
const DefaultPreset = PresetLast3Months

// Days counted back from today, inclusive of today.
var lookbackDays = map[Preset]int{
	PresetToday:       0,
	PresetWeek:        6,
	PresetLast3Months: 30*3 - 1,
	PresetLast6Months: 30*6 - 1,
	PresetLastYear:    365 - 1,
}

var labels = map[Preset]string{
	PresetToday:       "Today",
	PresetWeek:        "Last 7 days",
	PresetLast3Months: "Last 3 months",
	PresetLast6Months: "Last 6 months",
	PresetLastYear:    "Last year",
	PresetCustom:      "Custom",
}

// Label returns the display name of the preset.
func (p Preset) Label() string {
	if l, ok := labels[p]; ok {
		return l
	}

	return string(p)
}

// Presets lists the relative presets in display order.
func Presets() []Preset {
	return []Preset{PresetToday, PresetWeek, PresetLast3Months, PresetLast6Months, PresetLastYear}
}

// ParsePreset parses a preset name. An empty string yields DefaultPreset.
func ParsePreset(s string) (Preset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPreset, nil
	}

	p := Preset(s)
	if p == PresetCustom {
		return p, nil
	}

	if _, ok := lookbackDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}

	return p, nil
}
