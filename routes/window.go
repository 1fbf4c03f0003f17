/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/humaidq/biolog/daterange"
)

const dateLayout = "2006-01-02"

// PresetOption is one entry of the date-window selector.
type PresetOption struct {
	Value    daterange.Preset
	Label    string
	Selected bool
}

func presetOptions(selected daterange.Preset) []PresetOption {
	presets := append(daterange.Presets(), daterange.PresetCustom)

	options := make([]PresetOption, 0, len(presets))
	for _, p := range presets {
		options = append(options, PresetOption{Value: p, Label: p.Label(), Selected: p == selected})
	}

	return options
}

// resolveWindow reads preset, start and end from the query string. A custom
// window takes whole days in the configured location.
func resolveWindow(query url.Values, settings Settings) (daterange.Range, error) {
	preset, err := daterange.ParsePreset(query.Get("preset"))
	if err != nil {
		return daterange.Range{}, err
	}

	if preset != daterange.PresetCustom {
		return daterange.Resolve(preset, settings.now())
	}

	startRaw := strings.TrimSpace(query.Get("start"))
	endRaw := strings.TrimSpace(query.Get("end"))

	if startRaw == "" || endRaw == "" {
		return daterange.Range{}, errMissingDateRange
	}

	start, err := parseDate(startRaw, settings.location())
	if err != nil {
		return daterange.Range{}, err
	}

	end, err := parseDate(endRaw, settings.location())
	if err != nil {
		return daterange.Range{}, err
	}

	return daterange.Custom(daterange.StartOfDay(start), daterange.EndOfDay(end))
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, raw)
	}

	return t, nil
}

// windowData fills the template fields shared by every page with a window selector.
func windowData(data map[string]interface{}, r daterange.Range) {
	data["Presets"] = presetOptions(r.Preset)
	data["Preset"] = string(r.Preset)
	data["WindowStart"] = r.Start.Format(dateLayout)
	data["WindowEnd"] = r.End.Format(dateLayout)
	data["WindowLabel"] = windowLabel(r)
}

func windowLabel(r daterange.Range) string {
	if r.Start.Format(dateLayout) == r.End.Format(dateLayout) {
		return r.Start.Format("Jan 2, 2006")
	}

	return r.Start.Format("Jan 2, 2006") + " – " + r.End.Format("Jan 2, 2006")
}
