/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/biolog/db"
)

var CmdMigrate = &cli.Command{
	Name:  "migrate",
	Usage: "Database migration commands",
	Flags: []cli.Flag{
		databaseURLFlag(),
	},
	Commands: []*cli.Command{
		{
			Name:   "up",
			Usage:  "Run all pending migrations",
			Action: migrateUp,
		},
		{
			Name:   "down",
			Usage:  "Roll back the last migration",
			Action: migrateDown,
		},
		{
			Name:   "status",
			Usage:  "Show migration status",
			Action: migrateStatus,
		},
		{
			Name:      "create",
			Usage:     "Create a new SQL migration file <name>",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dialect",
					Value: string(db.DialectPostgres),
					Usage: "migration dialect: postgres or sqlite",
				},
			},
			Action: migrateCreate,
		},
		{
			Name:   "version",
			Usage:  "Print the current version of the database",
			Action: migrateVersion,
		},
	},
}

func getMigrator(ctx context.Context, cmd *cli.Command) (*db.Migrator, error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return nil, errDatabaseURLRequired
	}

	return db.NewMigrator(ctx, databaseURL)
}

func migrateUp(ctx context.Context, cmd *cli.Command) error {
	m, err := getMigrator(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	results, err := m.Up(ctx)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		appLogger.Info("No pending migrations")
		return nil
	}

	appLogger.Info("Migrations completed successfully", "applied", len(results))

	return nil
}

func migrateDown(ctx context.Context, cmd *cli.Command) error {
	m, err := getMigrator(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	result, err := m.Down(ctx)
	if err != nil {
		return err
	}

	appLogger.Info("Migration rolled back successfully", "version", result.Source.Version)

	return nil
}

func migrateStatus(ctx context.Context, cmd *cli.Command) error {
	m, err := getMigrator(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	status, err := m.Status(ctx)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer

	for _, s := range status {
		applied := "Pending"
		if s.State == goose.StateApplied {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}

		fmt.Fprintf(w, "%-24s %05d %s\n", applied, s.Source.Version, s.Source.Path)
	}

	return nil
}

func migrateCreate(_ context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return errMigrationNameRequired
	}

	dialect := db.Dialect(cmd.String("dialect"))
	if dialect != db.DialectPostgres && dialect != db.DialectSQLite {
		return fmt.Errorf("unknown dialect %q", dialect)
	}

	if err := goose.Create(nil, db.MigrationsDir(dialect), name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	appLogger.Info("Created migration", "name", name, "dialect", dialect)

	return nil
}

func migrateVersion(ctx context.Context, cmd *cli.Command) error {
	m, err := getMigrator(ctx, cmd)
	if err != nil {
		return err
	}
	defer m.Close()

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "Database version: %d\n", version)

	return nil
}
