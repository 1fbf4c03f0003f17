/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	// Register pgx with database/sql for goose migrations.
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// MigrationsDir is the source directory of a dialect's migrations, used
// when creating new migration files.
func MigrationsDir(d Dialect) string {
	return "db/migrations/" + string(d)
}

// Migrator applies the embedded migrations of one dialect.
type Migrator struct {
	provider *goose.Provider
	db       *sql.DB
	ownsDB   bool
}

func (d Dialect) gooseDialect() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}

	return goose.DialectSQLite3
}

func newMigrator(d Dialect, sqlDB *sql.DB, ownsDB bool) (*Migrator, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations/"+string(d))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s migrations: %w", d, err)
	}

	provider, err := goose.NewProvider(d.gooseDialect(), sqlDB, migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{provider: provider, db: sqlDB, ownsDB: ownsDB}, nil
}

// NewMigrator opens its own connection to databaseURL. Close releases it.
func NewMigrator(ctx context.Context, databaseURL string) (*Migrator, error) {
	dialect, dsn, err := ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	var sqlDB *sql.DB

	switch dialect {
	case DialectPostgres:
		if err := ensureDatabaseExists(ctx, dsn); err != nil {
			return nil, fmt.Errorf("failed to ensure database exists: %w", err)
		}

		sqlDB, err = sql.Open("pgx", dsn)
	default:
		sqlDB, err = openSQLiteDB(ctx, dsn)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database for migrations: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		closeDB(sqlDB)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := newMigrator(dialect, sqlDB, true)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	return m, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("Applied migration", "version", r.Source.Version, "duration", r.Duration)
	}

	return results, nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to roll back migration: %w", err)
	}

	return result, nil
}

// Status reports every known migration and whether it is applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	status, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration status: %w", err)
	}

	return status, nil
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get database version: %w", err)
	}

	return version, nil
}

// Close releases the connection if the migrator opened it.
func (m *Migrator) Close() {
	if m.ownsDB {
		closeDB(m.db)
	}
}

// Migrate applies pending migrations to databaseURL.
func Migrate(ctx context.Context, databaseURL string) error {
	m, err := NewMigrator(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = m.Up(ctx)

	return err
}

func closeDB(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database connection", "error", err)
	}
}
