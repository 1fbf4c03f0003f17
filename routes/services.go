/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"time"

	"github.com/flamego/flamego"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

// Settings holds the request-independent configuration handlers need.
type Settings struct {
	// Location is the zone date windows are resolved and times displayed in.
	Location *time.Location
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}

	return s.Location
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.location())
	}

	return s.Now().In(s.location())
}

// Services maps the entry store, the biomarker catalog and settings into the
// request context so handlers can declare them as arguments.
func Services(store db.Store, catalog *biomarkers.Catalog, settings Settings) flamego.Handler {
	return func(c flamego.Context) {
		c.MapTo(store, (*db.Store)(nil))
		c.Map(catalog)
		c.Map(settings)
	}
}
