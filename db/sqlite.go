/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	// Register the pure Go sqlite driver.
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps entries in an embedded SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// openSQLiteDB opens a single-connection handle. SQLite allows one writer,
// and an in-memory database lives only as long as its connection.
func openSQLiteDB(ctx context.Context, dsn string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if !isMemoryDSN(dsn) {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			closeDB(sqlDB)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return sqlDB, nil
}

// OpenSQLite opens or creates the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	sqlDB, err := openSQLiteDB(ctx, dsn)
	if err != nil {
		return nil, err
	}

	m, err := newMigrator(DialectSQLite, sqlDB, false)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	if _, err := m.Up(ctx); err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	logger.Info("Opened SQLite database", "path", dsn)

	return NewSQLiteStore(sqlDB), nil
}

// NewSQLiteStore wraps an existing, migrated handle.
func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: sqlDB}
}

// DB exposes the underlying handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Insert(ctx context.Context, e Entry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO entries (biomarker_code, biomarker_name, value_num, value_text, unit, taken_at, location, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query, entryArgs(e)...)
	if err != nil {
		return 0, storageError("insert entry", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("read inserted id", err)
	}

	return id, nil
}

func (s *SQLiteStore) Query(ctx context.Context, f Filter) ([]Entry, error) {
	where, args := f.where(questionPlaceholder)
	query := `SELECT ` + entryColumns + ` FROM entries` + where + ` ORDER BY taken_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("query entries", err)
	}

	defer func() {
		if err := rows.Close(); err != nil {
			logger.Warn("Failed to close rows", "error", err)
		}
	}()

	entries := []Entry{}

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, storageError("scan entry", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate entries", err)
	}

	return entries, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id int64) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}

	if err != nil {
		return Entry{}, storageError("get entry", err)
	}

	return e, nil
}

func (s *SQLiteStore) Update(ctx context.Context, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE entries
		SET biomarker_code = ?, biomarker_name = ?, value_num = ?, value_text = ?,
		    unit = ?, taken_at = ?, location = ?, notes = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, append(entryArgs(e), e.ID)...)
	if err != nil {
		return storageError("update entry", err)
	}

	return requireAffected(res, "update entry")
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return storageError("delete entry", err)
	}

	return requireAffected(res, "delete entry")
}

func (s *SQLiteStore) Close() {
	closeDB(s.db)
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageError(op, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
