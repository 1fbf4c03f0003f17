/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/biolog/biomarkers"
	"github.com/humaidq/biolog/daterange"
	"github.com/humaidq/biolog/db"
	"github.com/humaidq/biolog/export"
)

var CmdEntries = &cli.Command{
	Name:  "entries",
	Usage: "Work with recorded measurements",
	Flags: []cli.Flag{
		databaseURLFlag(),
		timezoneFlag(),
	},
	Commands: []*cli.Command{
		{
			Name:  "export",
			Usage: "Export entries in a date window to an XLSX workbook",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file path",
				},
				&cli.StringFlag{
					Name:  "preset",
					Value: string(daterange.DefaultPreset),
					Usage: "date window: today, week, last3months, last6months or lastyear",
				},
				&cli.StringFlag{
					Name:  "code",
					Usage: "only export this biomarker code",
				},
			},
			Action: entriesExport,
		},
	},
}

// exportWindow resolves preset relative to now in loc.
func exportWindow(preset string, now time.Time, loc *time.Location) (daterange.Range, error) {
	p, err := daterange.ParsePreset(preset)
	if err != nil {
		return daterange.Range{}, err
	}

	return daterange.Resolve(p, now.In(loc))
}

func entriesExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	if output == "" {
		return errOutputRequired
	}

	loc, err := loadLocation(cmd.String("timezone"))
	if err != nil {
		return err
	}

	window, err := exportWindow(cmd.String("preset"), time.Now(), loc)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return exportEntries(ctx, store, window, cmd.String("code"), loc, output)
}

func exportEntries(ctx context.Context, store db.Store, window daterange.Range, code string, loc *time.Location, output string) error {
	entries, err := store.Query(ctx, db.Filter{}.Window(window).ForCode(code))
	if err != nil {
		return fmt.Errorf("failed to query entries: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}

	if err := export.WriteXLSX(f, entries, biomarkers.Default(), loc); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	appLogger.Info("Exported entries", "count", len(entries), "file", output,
		"start", window.Start.Format(time.DateOnly), "end", window.End.Format(time.DateOnly))

	return nil
}
