/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type valueKind uint8

const (
	valueUnset valueKind = iota
	valueNumeric
	valueText
)

// Value is a measurement value: either a number or free text such as
// "positive" or "1:80". The zero Value is unset.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Numeric returns a numeric value.
func Numeric(v float64) Value {
	return Value{kind: valueNumeric, num: v}
}

// Text returns a textual value.
func Text(s string) Value {
	return Value{kind: valueText, text: s}
}

// IsSet reports whether the value holds a number or text.
func (v Value) IsSet() bool {
	return v.kind != valueUnset
}

// IsNumeric reports whether the value is a number.
func (v Value) IsNumeric() bool {
	return v.kind == valueNumeric
}

// AsNumber returns the number and true for numeric values.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == valueNumeric
}

// AsText returns the text and true for textual values.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == valueText
}

func (v Value) String() string {
	switch v.kind {
	case valueNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case valueText:
		return v.text
	default:
		return ""
	}
}

func (v Value) validate() error {
	switch v.kind {
	case valueUnset:
		return errMissingValue
	case valueNumeric:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return errNonFiniteValue
		}
	case valueText:
		if strings.TrimSpace(v.text) == "" {
			return errMissingValue
		}
	}

	return nil
}

// ParseValue reads form input: anything that parses as a finite float is
// numeric, other non-blank input is text. Surrounding space is dropped.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Numeric(f)
	}

	return Text(raw)
}

// MarshalJSON encodes a number, a string, or null when unset.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case valueNumeric:
		return json.Marshal(v.num)
	case valueText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = Numeric(x)
	case string:
		*v = Text(x)
	default:
		return errInvalidValueJSON
	}

	return nil
}

// columns splits the value into the nullable value_num and value_text columns.
func (v Value) columns() (num *float64, text *string) {
	switch v.kind {
	case valueNumeric:
		n := v.num
		return &n, nil
	case valueText:
		t := v.text
		return nil, &t
	default:
		return nil, nil
	}
}

func valueFromColumns(num *float64, text *string) (Value, error) {
	switch {
	case num != nil && text != nil:
		return Value{}, errMixedValueKinds
	case num != nil:
		return Numeric(*num), nil
	case text != nil:
		return Text(*text), nil
	default:
		return Value{}, errMissingValue
	}
}
