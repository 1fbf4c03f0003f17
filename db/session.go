/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/flamego/session"
	"github.com/jackc/pgx/v5"
)

// SessionConfig contains options for the database session store.
type SessionConfig struct {
	// Store holds the sessions table. Required.
	Store Store
	// Lifetime is the duration to have no access to a session before being recycled.
	// Default is 30 days.
	Lifetime time.Duration
	// Encoder is the encoder to encode session data. Default is session.GobEncoder.
	Encoder session.Encoder
	// Decoder is the decoder to decode session data. Default is session.GobDecoder.
	Decoder session.Decoder
}

// sessionBackend is implemented by stores that can persist web sessions.
type sessionBackend interface {
	loadSession(ctx context.Context, sid string, now time.Time) ([]byte, error)
	saveSession(ctx context.Context, sid string, data []byte, expiresAt time.Time) error
	touchSession(ctx context.Context, sid string, expiresAt time.Time) error
	destroySession(ctx context.Context, sid string) error
	gcSessions(ctx context.Context, now time.Time) error
}

// SessionStore implements session.Store on top of an entry store.
type SessionStore struct {
	backend  sessionBackend
	lifetime time.Duration
	encoder  session.Encoder
	decoder  session.Decoder
	now      func() time.Time
}

// SessionIniter returns the Initer for the database session store. It
// expects a SessionConfig as its first argument.
func SessionIniter() session.Initer {
	return func(ctx context.Context, args ...interface{}) (session.Store, error) {
		if len(args) == 0 {
			return nil, ErrInvalidSessionStoreConfig
		}

		config, ok := args[0].(SessionConfig)
		if !ok {
			return nil, ErrInvalidSessionStoreConfig
		}

		backend, ok := config.Store.(sessionBackend)
		if !ok {
			return nil, ErrInvalidSessionStoreConfig
		}

		if config.Lifetime == 0 {
			config.Lifetime = 30 * 24 * time.Hour
		}

		if config.Encoder == nil {
			config.Encoder = session.GobEncoder
		}

		if config.Decoder == nil {
			config.Decoder = session.GobDecoder
		}

		return &SessionStore{
			backend:  backend,
			lifetime: config.Lifetime,
			encoder:  config.Encoder,
			decoder:  config.Decoder,
			now:      time.Now,
		}, nil
	}
}

// Exist returns true if the session with given ID exists and hasn't expired
func (s *SessionStore) Exist(ctx context.Context, sid string) bool {
	data, err := s.backend.loadSession(ctx, sid, s.now())
	return err == nil && data != nil
}

// Read returns the session with given ID. If a session with the ID does not exist,
// a new session with the same ID is created and returned.
func (s *SessionStore) Read(ctx context.Context, sid string) (session.Session, error) {
	data, err := s.backend.loadSession(ctx, sid, s.now())
	if err != nil {
		return nil, err
	}

	// Cookies are written by the session middleware.
	idWriter := func(http.ResponseWriter, *http.Request, string) {}

	if len(data) == 0 {
		return session.NewBaseSession(sid, s.encoder, idWriter), nil
	}

	sessionData, err := s.decoder(data)
	if err != nil {
		logger.Warn("Discarding undecodable session", "error", err)
		return session.NewBaseSession(sid, s.encoder, idWriter), nil
	}

	return session.NewBaseSessionWithData(sid, s.encoder, idWriter, sessionData), nil
}

// Destroy deletes session with given ID from the session store completely
func (s *SessionStore) Destroy(ctx context.Context, sid string) error {
	return s.backend.destroySession(ctx, sid)
}

// Touch updates the expiry time of the session with given ID
func (s *SessionStore) Touch(ctx context.Context, sid string) error {
	return s.backend.touchSession(ctx, sid, s.now().Add(s.lifetime))
}

// Save persists session data to the session store
func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	data, err := sess.Encode()
	if err != nil {
		return err
	}

	return s.backend.saveSession(ctx, sess.ID(), data, s.now().Add(s.lifetime))
}

// GC performs a garbage collection operation on the session store
func (s *SessionStore) GC(ctx context.Context) error {
	return s.backend.gcSessions(ctx, s.now())
}

func (s *PostgresStore) loadSession(ctx context.Context, sid string, now time.Time) ([]byte, error) {
	var data []byte

	err := s.pool.QueryRow(ctx,
		`SELECT data FROM sessions WHERE id = $1 AND expires_at > $2`,
		sid, now.UnixMilli(),
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, storageError("read session", err)
	}

	return data, nil
}

func (s *PostgresStore) saveSession(ctx context.Context, sid string, data []byte, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			expires_at = EXCLUDED.expires_at`,
		sid, data, expiresAt.UnixMilli(),
	)

	return storageError("save session", err)
}

func (s *PostgresStore) touchSession(ctx context.Context, sid string, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx, `UPDATE sessions SET expires_at = $1 WHERE id = $2`, expiresAt.UnixMilli(), sid)
	return storageError("touch session", err)
}

func (s *PostgresStore) destroySession(ctx context.Context, sid string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sid)
	return storageError("destroy session", err)
}

func (s *PostgresStore) gcSessions(ctx context.Context, now time.Time) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now.UnixMilli())
	return storageError("collect sessions", err)
}

func (s *SQLiteStore) loadSession(ctx context.Context, sid string, now time.Time) ([]byte, error) {
	var data []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE id = ? AND expires_at > ?`,
		sid, now.UnixMilli(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, storageError("read session", err)
	}

	return data, nil
}

func (s *SQLiteStore) saveSession(ctx context.Context, sid string, data []byte, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, data, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			data = excluded.data,
			expires_at = excluded.expires_at`,
		sid, data, expiresAt.UnixMilli(),
	)

	return storageError("save session", err)
}

func (s *SQLiteStore) touchSession(ctx context.Context, sid string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET expires_at = ? WHERE id = ?`, expiresAt.UnixMilli(), sid)
	return storageError("touch session", err)
}

func (s *SQLiteStore) destroySession(ctx context.Context, sid string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sid)
	return storageError("destroy session", err)
}

func (s *SQLiteStore) gcSessions(ctx context.Context, now time.Time) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.UnixMilli())
	return storageError("collect sessions", err)
}
