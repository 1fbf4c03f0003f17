/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errInvalidEntryID   = errors.New("invalid entry id")
	errInvalidTakenAt   = errors.New("invalid measurement time")
	errMissingValue     = errors.New("missing value")
	errInvalidDate      = errors.New("invalid date")
	errMissingDateRange = errors.New("custom range needs a start and end date")
)
