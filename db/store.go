/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Store persists measurement entries.
type Store interface {
	// Insert validates and stores e, returning the assigned id. e.ID is ignored.
	Insert(ctx context.Context, e Entry) (int64, error)
	// Query returns matching entries, newest first.
	Query(ctx context.Context, f Filter) ([]Entry, error)
	Get(ctx context.Context, id int64) (Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, id int64) error
	Close()
}

// Dialect identifies a supported database engine.
type Dialect string

// Supported dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDatabaseURL detects the dialect of a connection string and returns
// the DSN to hand to its driver.
func ParseDatabaseURL(databaseURL string) (Dialect, string, error) {
	databaseURL = strings.TrimSpace(databaseURL)

	switch {
	case databaseURL == "":
		return "", "", ErrDatabaseURLNotSet
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DialectPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: %q has no path", ErrUnsupportedDatabaseURL, databaseURL)
		}

		return DialectSQLite, path, nil
	case strings.HasPrefix(databaseURL, "file:"), databaseURL == ":memory:":
		return DialectSQLite, databaseURL, nil
	case hasSQLiteExtension(databaseURL):
		return DialectSQLite, databaseURL, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, databaseURL)
}

func hasSQLiteExtension(path string) bool {
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

// Open connects to the database named by databaseURL, applies pending
// migrations and returns the matching Store.
func Open(ctx context.Context, databaseURL string) (Store, error) {
	dialect, dsn, err := ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return OpenSQLite(ctx, dsn)
	}
}

const entryColumns = `id, biomarker_code, biomarker_name, value_num, value_text, unit, taken_at, location, notes`

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e        Entry
		code     sql.NullString
		valueNum sql.NullFloat64
		valueTxt sql.NullString
		unit     sql.NullString
		takenAt  int64
		location sql.NullString
		notes    sql.NullString
	)

	if err := row.Scan(&e.ID, &code, &e.BiomarkerName, &valueNum, &valueTxt, &unit, &takenAt, &location, &notes); err != nil {
		return Entry{}, err
	}

	value, err := valueFromColumns(nullFloat(valueNum), nullString(valueTxt))
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d: %w", e.ID, err)
	}

	e.BiomarkerCode = nullString(code)
	e.Value = value
	e.Unit = nullString(unit)
	e.TakenAt = timeFromMillis(takenAt)
	e.Location = nullString(location)
	e.Notes = nullString(notes)

	return e, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}

	return &f.Float64
}

// entryArgs returns the column values for insert and update, in
// entryColumns order without id.
func entryArgs(e Entry) []any {
	num, text := e.Value.columns()

	return []any{
		derefString(e.BiomarkerCode),
		e.BiomarkerName,
		derefFloat(num),
		derefString(text),
		derefString(e.Unit),
		e.TakenAtMillis(),
		derefString(e.Location),
		derefString(e.Notes),
	}
}
