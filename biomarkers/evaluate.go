/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

// Status classifies a measurement against its reference range.
type Status int

// Evaluation outcomes.
const (
	StatusUnknown Status = iota
	StatusInRange
	StatusOutOfRange
)

func (s Status) String() string {
	switch s {
	case StatusInRange:
		return "normal"
	case StatusOutOfRange:
		return "abnormal"
	default:
		return "unknown"
	}
}

// Label is the human readable form shown in badges and exports.
func (s Status) Label() string {
	switch s {
	case StatusInRange:
		return "In range"
	case StatusOutOfRange:
		return "Out of range"
	default:
		return "No reference"
	}
}

// Evaluate classifies value against the reference range of the biomarker
// with the given code. Bounds are inclusive. The result is StatusUnknown
// when there is nothing to compare against: no code, no value, an unknown
// code, a definition without a range, or a unit that differs from the
// range unit. Units are never converted.
func (c *Catalog) Evaluate(code *string, value *float64, unit *string) Status {
	if code == nil || value == nil {
		return StatusUnknown
	}

	def, ok := c.ByCode(*code)
	if !ok {
		return StatusUnknown
	}

	return def.Evaluate(*value, unit)
}

// Evaluate classifies value against this definition's reference range.
func (d Definition) Evaluate(value float64, unit *string) Status {
	r := d.Range
	if r == nil {
		return StatusUnknown
	}

	if r.Unit != "" && unit != nil && *unit != "" && *unit != r.Unit {
		return StatusUnknown
	}

	if r.Low != nil && value < *r.Low {
		return StatusOutOfRange
	}

	if r.High != nil && value > *r.High {
		return StatusOutOfRange
	}

	return StatusInRange
}
