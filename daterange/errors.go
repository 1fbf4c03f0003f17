/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package daterange

import "errors"

var (
	// ErrCustomBounds is returned when the custom preset is resolved without bounds.
	ErrCustomBounds = errors.New("custom date range requires explicit bounds")

	// ErrInvertedRange is returned when a range starts after it ends.
	ErrInvertedRange = errors.New("date range start is after end")

	// ErrUnknownPreset is returned for an unrecognised preset name.
	ErrUnknownPreset = errors.New("unknown date range preset")
)
