/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
)

// Mount registers the application routes on f. Services, sessions, CSRF
// protection and templates must already be in use.
func Mount(f *flamego.Flame) {
	f.Get("/", Home)

	f.Group("/entries", func() {
		f.Get("", ListEntries)
		f.Get("/export.xlsx", ExportEntries)
		f.Get("/new", NewEntryForm)
		f.Post("/new", csrf.Validate, CreateEntry)
		f.Get("/{id}/edit", EditEntryForm)
		f.Post("/{id}/edit", csrf.Validate, UpdateEntry)
		f.Post("/{id}/delete", csrf.Validate, DeleteEntry)
	})

	f.Group("/biomarkers", func() {
		f.Get("", ListBiomarkers)
		f.Get("/{code}", ViewBiomarker)
	})

	f.Group("/api/biomarkers", func() {
		f.Get("/search", SearchBiomarkersAPI)
		f.Get("/evaluate", EvaluateAPI)
	})
}
