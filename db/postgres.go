/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps entries in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates the database if needed, migrates it and connects a pool.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if err := Migrate(ctx, databaseURL); err != nil {
		return nil, err
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to PostgreSQL", "database", config.ConnConfig.Database)

	return NewPostgresStore(pool), nil
}

// NewPostgresStore wraps an existing, migrated pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Pool exposes the underlying pool.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStore) Insert(ctx context.Context, e Entry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO entries (biomarker_code, biomarker_name, value_num, value_text, unit, taken_at, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	if err := s.pool.QueryRow(ctx, query, entryArgs(e)...).Scan(&id); err != nil {
		return 0, storageError("insert entry", err)
	}

	return id, nil
}

func (s *PostgresStore) Query(ctx context.Context, f Filter) ([]Entry, error) {
	where, args := f.where(dollarPlaceholder)
	query := `SELECT ` + entryColumns + ` FROM entries` + where + ` ORDER BY taken_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("query entries", err)
	}
	defer rows.Close()

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

func (s *PostgresStore) Get(ctx context.Context, id int64) (Entry, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = $1`, id)

	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}

	if err != nil {
		return Entry{}, storageError("get entry", err)
	}

	return e, nil
}

func (s *PostgresStore) Update(ctx context.Context, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE entries
		SET biomarker_code = $1, biomarker_name = $2, value_num = $3, value_text = $4,
		    unit = $5, taken_at = $6, location = $7, notes = $8
		WHERE id = $9
	`

	tag, err := s.pool.Exec(ctx, query, append(entryArgs(e), e.ID)...)
	if err != nil {
		return storageError("update entry", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return storageError("delete entry", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// ensureDatabaseExists creates the database if it doesn't exist
func ensureDatabaseExists(ctx context.Context, databaseURL string) error {
	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	dbName := config.Database
	if dbName == "" {
		return ErrDatabaseNameNotSpecified
	}

	// The maintenance database always exists.
	config.Database = "postgres"

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	defer func() {
		if err := conn.Close(ctx); err != nil {
			logger.Warn("Failed to close bootstrap database connection", "error", err)
		}
	}()

	var exists bool

	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil
	}

	// Database names can't be parameterized.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize()); err != nil {
		// Lost a race with another process.
		if !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	logger.Info("Created database", "database", dbName)

	return nil
}
