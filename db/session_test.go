// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"testing"
	"time"

	"github.com/flamego/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T, lifetime time.Duration) *SessionStore {
	t.Helper()

	store, err := SessionIniter()(testContext(), SessionConfig{Store: newSQLiteStore(t), Lifetime: lifetime})
	require.NoError(t, err)

	s, ok := store.(*SessionStore)
	require.True(t, ok)

	return s
}

func TestSessionIniterRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := SessionIniter()(testContext())
	assert.ErrorIs(t, err, ErrInvalidSessionStoreConfig)

	_, err = SessionIniter()(testContext(), "not a config")
	assert.ErrorIs(t, err, ErrInvalidSessionStoreConfig)

	_, err = SessionIniter()(testContext(), SessionConfig{})
	assert.ErrorIs(t, err, ErrInvalidSessionStoreConfig)
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	s := newSessionStore(t, time.Hour)
	ctx := testContext()

	assert.False(t, s.Exist(ctx, "sid-1"))

	sess, err := s.Read(ctx, "sid-1")
	require.NoError(t, err)
	sess.Set("flash", "saved")
	require.NoError(t, s.Save(ctx, sess))

	assert.True(t, s.Exist(ctx, "sid-1"))

	loaded, err := s.Read(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "saved", loaded.Get("flash"))

	// Saving again replaces the data.
	loaded.Set("flash", "updated")
	require.NoError(t, s.Save(ctx, loaded))

	reloaded, err := s.Read(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "updated", reloaded.Get("flash"))

	require.NoError(t, s.Destroy(ctx, "sid-1"))
	assert.False(t, s.Exist(ctx, "sid-1"))
}

func TestSessionExpiryAndGC(t *testing.T) {
	t.Parallel()

	s := newSessionStore(t, time.Minute)
	ctx := testContext()

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sess := session.NewBaseSession("sid-2", session.GobEncoder, nil)
	sess.Set("k", "v")
	require.NoError(t, s.Save(ctx, sess))

	now = now.Add(30 * time.Second)
	require.NoError(t, s.Touch(ctx, "sid-2"))

	now = now.Add(45 * time.Second)
	assert.True(t, s.Exist(ctx, "sid-2"), "touch should extend the lifetime")

	now = now.Add(2 * time.Minute)
	assert.False(t, s.Exist(ctx, "sid-2"))

	require.NoError(t, s.GC(ctx))

	var count int
	require.NoError(t, s.backend.(*SQLiteStore).DB().QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count))
	assert.Zero(t, count)
}
