/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/biolog/biomarkers"
)

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "print JSON instead of text",
	}
}

var CmdCatalog = newCatalogCommand()

func newCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Browse the built-in biomarker catalog",
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search biomarkers by name, code or alias",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: biomarkers.DefaultSearchLimit,
						Usage: "maximum number of results",
					},
					jsonFlag(),
				},
				Action: catalogSearch,
			},
			{
				Name:      "show",
				Usage:     "Show a biomarker definition",
				ArgsUsage: "<code>",
				Flags:     []cli.Flag{jsonFlag()},
				Action:    catalogShow,
			},
			{
				Name:      "evaluate",
				Usage:     "Classify a value against a biomarker's reference range",
				ArgsUsage: "<code> <value>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "unit",
						Usage: "unit of the value (defaults to the biomarker's preferred unit)",
					},
				},
				Action: catalogEvaluate,
			},
			{
				Name:   "categories",
				Usage:  "List catalog categories",
				Action: catalogCategories,
			},
		},
	}
}

func writeDefinition(w io.Writer, def biomarkers.Definition) {
	fmt.Fprintf(w, "%-24s %s", def.Code, def.Name)

	if r := def.Range.String(); r != "" {
		fmt.Fprintf(w, " (%s)", r)
	}

	fmt.Fprintln(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func catalogSearch(_ context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	results := biomarkers.Default().Search(query, int(cmd.Int("limit")))

	w := cmd.Root().Writer

	if cmd.Bool("json") {
		return writeJSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(w, "No biomarkers match %q\n", query)
		return nil
	}

	for _, def := range results {
		writeDefinition(w, def)
	}

	return nil
}

func lookupDefinition(code string) (biomarkers.Definition, error) {
	if code == "" {
		return biomarkers.Definition{}, errBiomarkerRequired
	}

	def, ok := biomarkers.Default().ByCode(code)
	if !ok {
		return biomarkers.Definition{}, fmt.Errorf("%w: %q", errUnknownBiomarker, code)
	}

	return def, nil
}

func catalogShow(_ context.Context, cmd *cli.Command) error {
	def, err := lookupDefinition(cmd.Args().First())
	if err != nil {
		return err
	}

	w := cmd.Root().Writer

	if cmd.Bool("json") {
		return writeJSON(w, def)
	}

	fmt.Fprintf(w, "Code:     %s\n", def.Code)
	fmt.Fprintf(w, "Name:     %s\n", def.Name)
	fmt.Fprintf(w, "Category: %s\n", def.Category)

	units := make([]string, 0, len(def.Units))
	for _, u := range def.Units {
		units = append(units, u.Code)
	}

	fmt.Fprintf(w, "Units:    %s\n", strings.Join(units, ", "))

	if r := def.Range.String(); r != "" {
		fmt.Fprintf(w, "Range:    %s\n", r)

		if def.Range.Note != "" {
			fmt.Fprintf(w, "Note:     %s\n", def.Range.Note)
		}
	}

	if len(def.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases:  %s\n", strings.Join(def.Aliases, ", "))
	}

	return nil
}

func catalogEvaluate(_ context.Context, cmd *cli.Command) error {
	def, err := lookupDefinition(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	raw := cmd.Args().Get(1)
	if raw == "" {
		return errValueRequired
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("invalid value %q", raw)
	}

	unit := cmd.String("unit")
	if unit == "" {
		unit = def.PreferredUnit()
	}

	status := def.Evaluate(value, &unit)

	fmt.Fprintf(cmd.Root().Writer, "%s %s %s: %s", def.Name, raw, unit, status.Label())

	if r := def.Range.String(); r != "" {
		fmt.Fprintf(cmd.Root().Writer, " (reference %s)", r)
	}

	fmt.Fprintln(cmd.Root().Writer)

	return nil
}

func catalogCategories(_ context.Context, cmd *cli.Command) error {
	catalog := biomarkers.Default()

	for _, category := range catalog.Categories() {
		fmt.Fprintf(cmd.Root().Writer, "%-20s %d\n", category, len(catalog.InCategory(category)))
	}

	return nil
}
