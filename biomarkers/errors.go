/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import "errors"

var (
	errEmptyCode          = errors.New("definition code is empty")
	errDuplicateCode      = errors.New("duplicate definition code")
	errEmptyName          = errors.New("definition name is empty")
	errNoUnits            = errors.New("definition has no units")
	errUnknownDefaultUnit = errors.New("default unit is not one of the definition units")
	errInvertedRange      = errors.New("reference range low is greater than high")
	errUnknownRangeUnit   = errors.New("reference range unit is not one of the definition units")
)
