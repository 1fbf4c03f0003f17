/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entry does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidEntry is returned when an entry fails validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrStorage matches every StorageError.
	ErrStorage = errors.New("storage failure")

	ErrDatabaseURLNotSet         = errors.New("database URL is not set")
	ErrDatabaseNameNotSpecified  = errors.New("database name not specified in connection string")
	ErrUnsupportedDatabaseURL    = errors.New("unsupported database URL")
	ErrDatabaseNotInitialized    = errors.New("database connection not initialized")
	ErrInvalidSessionStoreConfig = errors.New("invalid session store config")

	errMissingName      = errors.New("biomarker name is required")
	errMissingValue     = errors.New("value is required")
	errNonFiniteValue   = errors.New("value must be a finite number")
	errMissingTakenAt   = errors.New("measurement time is required")
	errMixedValueKinds  = errors.New("stored row has both numeric and text values")
	errInvalidValueJSON = errors.New("value must be a number, a string or null")
)

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Unwrap lets errors.Is match both ErrStorage and the cause.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &StorageError{Op: op, Err: err}
}
