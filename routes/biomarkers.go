/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

// DefinitionView is a catalog definition prepared for display.
type DefinitionView struct {
	biomarkers.Definition
	RangeLabel string
	UnitLabels []string
}

func newDefinitionViews(defs []biomarkers.Definition) []DefinitionView {
	views := make([]DefinitionView, 0, len(defs))

	for _, def := range defs {
		labels := make([]string, 0, len(def.Units))
		for _, u := range def.Units {
			labels = append(labels, def.UnitLabel(u.Code))
		}

		views = append(views, DefinitionView{
			Definition: def,
			RangeLabel: def.Range.String(),
			UnitLabels: labels,
		})
	}

	return views
}

// CategoryOption is one entry of the category filter.
type CategoryOption struct {
	Name     biomarkers.Category
	Count    int
	Selected bool
}

// ListBiomarkers displays the reference catalog, optionally narrowed to a
// category or a search query.
func ListBiomarkers(c flamego.Context, t template.Template, data template.Data, catalog *biomarkers.Catalog) {
	data["IsBiomarkers"] = true
	data["Breadcrumbs"] = []BreadcrumbItem{
		biomarkersBreadcrumb(true),
	}

	selected := biomarkers.Category(strings.TrimSpace(c.Query("category")))
	query := strings.TrimSpace(c.Query("q"))

	categories := catalog.Categories()
	options := make([]CategoryOption, 0, len(categories))

	for _, category := range categories {
		options = append(options, CategoryOption{
			Name:     category,
			Count:    len(catalog.InCategory(category)),
			Selected: category == selected,
		})
	}

	var defs []biomarkers.Definition

	switch {
	case query != "":
		defs = catalog.Search(query, catalog.Len())
	case selected != "":
		defs = catalog.InCategory(selected)
	default:
		defs = catalog.All()
	}

	data["Categories"] = options
	data["Category"] = string(selected)
	data["Query"] = query
	data["Definitions"] = newDefinitionViews(defs)
	data["Total"] = catalog.Len()

	t.HTML(http.StatusOK, "biomarkers")
}

// ViewBiomarker displays a biomarker's chart, stats and entries for the
// selected window.
func ViewBiomarker(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	store db.Store,
	catalog *biomarkers.Catalog,
	settings Settings,
) {
	data["IsBiomarkers"] = true

	def, ok := catalog.ByCode(c.Param("code"))
	if !ok {
		SetErrorFlash(s, "Biomarker not found")
		c.Redirect("/biomarkers", http.StatusSeeOther)
		return
	}

	data["Biomarker"] = def
	data["RangeLabel"] = def.Range.String()
	data["Breadcrumbs"] = []BreadcrumbItem{
		biomarkersBreadcrumb(false),
		{Name: string(def.Category), URL: "/biomarkers?category=" + url.QueryEscape(string(def.Category))},
		biomarkerBreadcrumb(def.Code, def.Name, true),
	}

	window := windowOrDefault(c, settings, data)
	windowData(data, window)
	data["ExportURL"] = strings.Replace(entriesURL(window, def.Code), "/entries?", "/entries/export.xlsx?", 1)

	entries, err := store.Query(c.Request().Context(), entryFilter(window, def.Code))
	if err != nil {
		logger.Error("Failed to query biomarker entries", "code", def.Code, "error", err)
		data["Error"] = "Failed to load entries"
		t.HTML(http.StatusOK, "biomarker_view")
		return
	}

	stats := db.Summarize(entries)
	data["Stats"] = stats
	data["Entries"] = newEntryViews(entries, catalog, settings.location())

	unit := def.PreferredUnit()
	if stats.Latest != nil {
		unit = stats.Unit
		data["LatestStatus"] = stats.Latest.Status(catalog)
		data["Latest"] = newEntryView(*stats.Latest, catalog, settings.location())
	}

	data["StatsUnit"] = def.UnitLabel(unit)

	chart, err := generateBiomarkerChart(def, entries, unit, settings.location())
	if err != nil {
		logger.Error("Failed to render biomarker chart", "code", def.Code, "error", err)
	} else if chart != "" {
		data["Chart"] = htmltemplate.HTML(chart) //nolint:gosec // Chart HTML is generated by go-echarts.
	}

	t.HTML(http.StatusOK, "biomarker_view")
}
