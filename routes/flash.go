/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/session"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/db"
)

// FlashType selects the styling of a flash message.
type FlashType string

const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
	FlashWarning FlashType = "warning"
)

// FlashMessage is shown once on the page after a redirect.
type FlashMessage struct {
	Type    FlashType
	Message string
}

func init() {
	gob.Register(FlashMessage{})
}

func setFlash(s session.Session, typ FlashType, message string) {
	s.SetFlash(FlashMessage{Type: typ, Message: message})
}

// SetErrorFlash sets an error flash message in the session
func SetErrorFlash(s session.Session, message string) {
	setFlash(s, FlashError, message)
}

// SetSuccessFlash sets a success flash message in the session
func SetSuccessFlash(s session.Session, message string) {
	setFlash(s, FlashSuccess, message)
}

// SetWarningFlash sets a warning flash message in the session
func SetWarningFlash(s session.Session, message string) {
	setFlash(s, FlashWarning, message)
}

// setSavedFlash reports a saved entry, warning when its value falls outside
// the reference range. verb is "added" or "updated".
func setSavedFlash(s session.Session, e db.Entry, catalog *biomarkers.Catalog, verb string) {
	if e.Status(catalog) != biomarkers.StatusOutOfRange {
		SetSuccessFlash(s, "Entry "+verb+" successfully")
		return
	}

	msg := "Entry " + verb + ". Value is outside the reference range"

	if def, ok := e.Definition(catalog); ok {
		if r := def.Range.String(); r != "" {
			msg += " (" + r + ")"
		}
	}

	SetWarningFlash(s, msg)
}
