/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/daterange"
	"github.com/humaidq/biolog/db"
	"github.com/humaidq/biolog/export"
	"github.com/humaidq/biolog/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EntryView is an entry prepared for display.
type EntryView struct {
	db.Entry
	Code         string
	TakenAtLabel string
	ValueLabel   string
	UnitLabel    string
	Status       biomarkers.Status
	Range        string
	Known        bool
	NotesHTML    htmltemplate.HTML
}

func newEntryView(e db.Entry, catalog *biomarkers.Catalog, loc *time.Location) EntryView {
	v := EntryView{
		Entry:        e,
		TakenAtLabel: e.TakenAt.In(loc).Format("Jan 2, 2006 15:04"),
		ValueLabel:   e.Value.String(),
		UnitLabel:    e.UnitOrEmpty(),
		Status:       e.Status(catalog),
	}

	if def, ok := e.Definition(catalog); ok {
		v.Known = true
		v.Code = def.Code
		v.UnitLabel = def.UnitLabel(v.UnitLabel)
		v.Range = def.Range.String()
	}

	if e.Notes != nil {
		rendered, err := utils.RenderNotes(*e.Notes)
		if err != nil {
			logger.Warn("Failed to render entry notes", "entry_id", e.ID, "error", err)
		} else {
			v.NotesHTML = htmltemplate.HTML(rendered) //nolint:gosec // RenderNotes strips scripts and unsafe URLs.
		}
	}

	return v
}

func newEntryViews(entries []db.Entry, catalog *biomarkers.Catalog, loc *time.Location) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newEntryView(e, catalog, loc))
	}

	return views
}

// windowOrDefault resolves the request's window, falling back to the default
// preset when the query is invalid.
func windowOrDefault(c flamego.Context, settings Settings, data template.Data) daterange.Range {
	window, err := resolveWindow(c.Request().URL.Query(), settings)
	if err == nil {
		return window
	}

	logger.Warn("Invalid date window", "query", c.Request().URL.RawQuery, "error", err)
	data["Error"] = "Invalid date range, showing " + daterange.DefaultPreset.Label()

	window, _ = daterange.Resolve(daterange.DefaultPreset, settings.now())

	return window
}

func entryFilter(window daterange.Range, code string) db.Filter {
	return db.Filter{}.Window(window).ForCode(code)
}

func entriesURL(window daterange.Range, code string) string {
	query := url.Values{}
	query.Set("preset", string(window.Preset))

	if window.Preset == daterange.PresetCustom {
		query.Set("start", window.Start.Format(dateLayout))
		query.Set("end", window.End.Format(dateLayout))
	}

	if code != "" {
		query.Set("code", code)
	}

	return "/entries?" + query.Encode()
}

func parseEntryID(c flamego.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidEntryID, c.Param("id"))
	}

	return id, nil
}

// Home redirects to the entry list.
func Home(c flamego.Context) {
	c.Redirect("/entries", http.StatusSeeOther)
}

// ListEntries displays the entries recorded in the selected window
func ListEntries(
	c flamego.Context,
	t template.Template,
	data template.Data,
	store db.Store,
	catalog *biomarkers.Catalog,
	settings Settings,
) {
	data["IsEntries"] = true
	data["Breadcrumbs"] = []BreadcrumbItem{
		entriesBreadcrumb(true),
	}

	window := windowOrDefault(c, settings, data)
	windowData(data, window)

	code := strings.TrimSpace(c.Query("code"))
	if code != "" {
		if def, ok := catalog.ByCode(code); ok {
			data["Biomarker"] = def
		}
	}

	data["Code"] = code
	data["ExportURL"] = strings.Replace(entriesURL(window, code), "/entries?", "/entries/export.xlsx?", 1)

	entries, err := store.Query(c.Request().Context(), entryFilter(window, code))
	if err != nil {
		logger.Error("Failed to query entries", "code", code, "error", err)
		data["Error"] = "Failed to load entries"
	} else {
		data["Entries"] = newEntryViews(entries, catalog, settings.location())
	}

	t.HTML(http.StatusOK, "entries")
}

// NewEntryForm renders the add entry form. A code in the query pre-fills
// the biomarker and its preferred unit.
func NewEntryForm(
	c flamego.Context,
	t template.Template,
	data template.Data,
	catalog *biomarkers.Catalog,
	settings Settings,
) {
	data["IsEntries"] = true
	data["Breadcrumbs"] = []BreadcrumbItem{
		entriesBreadcrumb(false),
		{Name: "New Entry", URL: "", IsCurrent: true},
	}

	form := entryForm{
		TakenAt: settings.now().Format(takenAtLayout),
	}

	if def, ok := catalog.ByCode(strings.TrimSpace(c.Query("code"))); ok {
		form.BiomarkerCode = def.Code
		form.BiomarkerName = def.Name
		form.Unit = def.PreferredUnit()
		data["Biomarker"] = def
	}

	data["Form"] = form
	data["Definitions"] = catalog.All()

	t.HTML(http.StatusOK, "entry_new")
}

// CreateEntry handles entry creation
func CreateEntry(c flamego.Context, s session.Session, store db.Store, catalog *biomarkers.Catalog, settings Settings) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("Failed to parse entry form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	entry, err := parseEntryForm(c.Request().Form).entry(catalog, settings.location())
	if err != nil {
		SetErrorFlash(s, formErrorMessage(err))
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	id, err := store.Insert(c.Request().Context(), entry)
	if err != nil {
		logger.Error("Failed to create entry", "biomarker", entry.BiomarkerName, "error", err)
		SetErrorFlash(s, "Failed to save entry")
		c.Redirect("/entries/new", http.StatusSeeOther)
		return
	}

	logger.Info("Created entry", "entry_id", id, "biomarker", entry.BiomarkerName)
	setSavedFlash(s, entry, catalog, "added")

	if entry.BiomarkerCode != nil {
		c.Redirect("/biomarkers/"+url.PathEscape(*entry.BiomarkerCode), http.StatusSeeOther)
		return
	}

	c.Redirect("/entries", http.StatusSeeOther)
}

// EditEntryForm renders the edit entry form
func EditEntryForm(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	store db.Store,
	catalog *biomarkers.Catalog,
	settings Settings,
) {
	data["IsEntries"] = true

	id, err := parseEntryID(c)
	if err != nil {
		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return
	}

	entry, err := store.Get(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			logger.Error("Failed to fetch entry", "entry_id", id, "error", err)
		}

		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return
	}

	data["Entry"] = newEntryView(entry, catalog, settings.location())
	data["Form"] = entryFormFrom(entry, settings.location())
	data["Definitions"] = catalog.All()
	data["Breadcrumbs"] = []BreadcrumbItem{
		entriesBreadcrumb(false),
		{Name: "Edit Entry", URL: "", IsCurrent: true},
	}

	t.HTML(http.StatusOK, "entry_edit")
}

// UpdateEntry handles entry update
func UpdateEntry(c flamego.Context, s session.Session, store db.Store, catalog *biomarkers.Catalog, settings Settings) {
	id, err := parseEntryID(c)
	if err != nil {
		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return
	}

	editURL := fmt.Sprintf("/entries/%d/edit", id)

	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("Failed to parse entry form", "entry_id", id, "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(editURL, http.StatusSeeOther)
		return
	}

	entry, err := parseEntryForm(c.Request().Form).entry(catalog, settings.location())
	if err != nil {
		SetErrorFlash(s, formErrorMessage(err))
		c.Redirect(editURL, http.StatusSeeOther)
		return
	}

	entry.ID = id

	if err := store.Update(c.Request().Context(), entry); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			SetErrorFlash(s, "Entry not found")
			c.Redirect("/entries", http.StatusSeeOther)
			return
		}

		logger.Error("Failed to update entry", "entry_id", id, "error", err)
		SetErrorFlash(s, "Failed to update entry")
		c.Redirect(editURL, http.StatusSeeOther)
		return
	}

	logger.Info("Updated entry", "entry_id", id)
	setSavedFlash(s, entry, catalog, "updated")
	c.Redirect("/entries", http.StatusSeeOther)
}

// DeleteEntry handles entry deletion
func DeleteEntry(c flamego.Context, s session.Session, store db.Store) {
	id, err := parseEntryID(c)
	if err != nil {
		SetErrorFlash(s, "Entry not found")
		c.Redirect("/entries", http.StatusSeeOther)
		return
	}

	err = store.Delete(c.Request().Context(), id)

	switch {
	case err == nil:
		logger.Info("Deleted entry", "entry_id", id)
		SetSuccessFlash(s, "Entry deleted successfully")
	case errors.Is(err, db.ErrNotFound):
		SetErrorFlash(s, "Entry not found")
	default:
		logger.Error("Failed to delete entry", "entry_id", id, "error", err)
		SetErrorFlash(s, "Failed to delete entry")
	}

	c.Redirect("/entries", http.StatusSeeOther)
}

// ExportEntries downloads the entries of the selected window as a workbook.
func ExportEntries(c flamego.Context, store db.Store, catalog *biomarkers.Catalog, settings Settings) {
	window, err := resolveWindow(c.Request().URL.Query(), settings)
	if err != nil {
		c.ResponseWriter().WriteHeader(http.StatusBadRequest)
		return
	}

	code := strings.TrimSpace(c.Query("code"))

	entries, err := store.Query(c.Request().Context(), entryFilter(window, code))
	if err != nil {
		logger.Error("Failed to query entries for export", "code", code, "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, entries, catalog, settings.location()); err != nil {
		logger.Error("Failed to write export", "entries", len(entries), "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("biolog-%s-%s.xlsx", window.Start.Format(dateLayout), window.End.Format(dateLayout))

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", xlsxContentType)
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	header.Set("Content-Length", strconv.Itoa(buf.Len()))
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(c.ResponseWriter()); err != nil {
		logger.Warn("Failed to send export", "error", err)
	}
}
