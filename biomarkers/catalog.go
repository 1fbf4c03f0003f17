/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Catalog is an immutable, indexed set of biomarker definitions.
// It is safe for concurrent use.
type Catalog struct {
	defs   []Definition
	byCode map[string]int
	byName map[string]int
	keys   [][]string // folded name, code and aliases per definition
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinDefinitions())
		if err != nil {
			panic(fmt.Sprintf("invalid built-in biomarker catalog: %v", err))
		}

		defaultCatalog = c
		logger.Debug("Loaded biomarker catalog", "definitions", len(c.defs), "categories", len(c.Categories()))
	})

	return defaultCatalog
}

// New builds a catalog, validating every definition.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs:   make([]Definition, 0, len(defs)),
		byCode: make(map[string]int, len(defs)),
		byName: make(map[string]int, len(defs)),
		keys:   make([][]string, 0, len(defs)),
	}

	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("biomarker %q: %w", def.Code, err)
		}

		if _, exists := c.byCode[def.Code]; exists {
			return nil, fmt.Errorf("biomarker %q: %w", def.Code, errDuplicateCode)
		}

		idx := len(c.defs)
		c.defs = append(c.defs, def)
		c.byCode[def.Code] = idx

		name := fold(def.Name)
		if _, exists := c.byName[name]; !exists {
			c.byName[name] = idx
		}

		keys := []string{name, fold(def.Code)}
		for _, alias := range def.Aliases {
			keys = append(keys, fold(alias))
		}

		c.keys = append(c.keys, keys)
	}

	// Aliases resolve names only where no definition claims them as a name.
	for idx, def := range c.defs {
		for _, alias := range def.Aliases {
			if _, exists := c.byName[fold(alias)]; !exists {
				c.byName[fold(alias)] = idx
			}
		}
	}

	return c, nil
}

func validateDefinition(def Definition) error {
	if strings.TrimSpace(def.Code) == "" {
		return errEmptyCode
	}

	if strings.TrimSpace(def.Name) == "" {
		return errEmptyName
	}

	if len(def.Units) == 0 {
		return errNoUnits
	}

	if def.DefaultUnit != "" && !def.HasUnit(def.DefaultUnit) {
		return errUnknownDefaultUnit
	}

	if r := def.Range; r != nil {
		if r.Low != nil && r.High != nil && *r.Low > *r.High {
			return errInvertedRange
		}

		if r.Unit != "" && !def.HasUnit(r.Unit) {
			return errUnknownRangeUnit
		}
	}

	return nil
}

// ByCode returns the definition with the given code.
func (c *Catalog) ByCode(code string) (Definition, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return Definition{}, false
	}

	return c.defs[idx], true
}

// ByName returns the definition whose display name, or failing that an
// alias, matches name ignoring case. Used for entries that only recorded a
// name.
func (c *Catalog) ByName(name string) (Definition, bool) {
	idx, ok := c.byName[fold(strings.TrimSpace(name))]
	if !ok {
		return Definition{}, false
	}

	return c.defs[idx], true
}

// Resolve looks an entry's biomarker up by code, falling back to its name.
func (c *Catalog) Resolve(code *string, name string) (Definition, bool) {
	if code != nil && *code != "" {
		if def, ok := c.ByCode(*code); ok {
			return def, true
		}
	}

	return c.ByName(name)
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns every definition in declaration order.
func (c *Catalog) All() []Definition {
	return slices.Clone(c.defs)
}

// Categories returns the distinct categories, sorted by name.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]struct{})

	var categories []Category

	for _, def := range c.defs {
		if _, ok := seen[def.Category]; ok {
			continue
		}

		seen[def.Category] = struct{}{}
		categories = append(categories, def.Category)
	}

	slices.Sort(categories)

	return categories
}

// InCategory returns the definitions of a category in declaration order.
func (c *Catalog) InCategory(category Category) []Definition {
	var defs []Definition

	for _, def := range c.defs {
		if def.Category == category {
			defs = append(defs, def)
		}
	}

	return defs
}
