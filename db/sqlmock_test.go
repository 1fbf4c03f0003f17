// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk I/O error")

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return NewSQLiteStore(sqlDB), mock
}

func requireStorageError(t *testing.T, err error, op string) {
	t.Helper()

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, op, se.Op)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestStoreInsertFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO entries").WillReturnError(errDiskFull)

	_, err := s.Insert(testContext(), newEntry("weight", "Weight", Numeric(80), "kg", time.Now()))
	requireStorageError(t, err, "insert entry")
	assert.ErrorIs(t, err, errDiskFull)
}

func TestStoreInsertPassesNulls(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	takenAt := time.UnixMilli(1_700_000_000_000)

	mock.ExpectExec("INSERT INTO entries").
		WithArgs(nil, "Mood", nil, "good", nil, takenAt.UnixMilli(), nil, nil).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := s.Insert(testContext(), newEntry("", "Mood", Text("good"), "", takenAt))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestStoreQueryFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnError(errDiskFull)

	entries, err := s.Query(testContext(), Filter{})
	requireStorageError(t, err, "query entries")
	assert.Nil(t, entries)
}

func TestStoreQueryRejectsCorruptRow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"id", "biomarker_code", "biomarker_name", "value_num", "value_text", "unit", "taken_at", "location", "notes"}).
		AddRow(int64(1), nil, "Weight", 80.0, "eighty", "kg", int64(0), nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM entries").WillReturnRows(rows)

	_, err := s.Query(testContext(), Filter{})
	requireStorageError(t, err, "scan entry")
	assert.ErrorIs(t, err, errMixedValueKinds)
}

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM entries WHERE id = ").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Get(testContext(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorage)
}

func TestStoreDeleteFailures(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec("DELETE FROM entries").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM entries").WithArgs(int64(4)).WillReturnError(errDiskFull)
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewErrorResult(errDiskFull))

	assert.ErrorIs(t, s.Delete(testContext(), 3), ErrNotFound)
	requireStorageError(t, s.Delete(testContext(), 4), "delete entry")
	requireStorageError(t, s.Delete(testContext(), 5), "delete entry")
}

func TestStoreUpdateFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE entries").WillReturnError(errDiskFull)

	e := newEntry("weight", "Weight", Numeric(80), "kg", time.Now())
	e.ID = 1

	requireStorageError(t, s.Update(testContext(), e), "update entry")
}
