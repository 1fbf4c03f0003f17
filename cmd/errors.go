/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errCSRFSecretRequired    = errors.New("CSRF_SECRET is required in production")
	errInvalidRuntimeEnv     = errors.New(runtimeEnvVar + " must be one of: development, dev, production, prod")
	errBiomarkerRequired     = errors.New("biomarker code is required")
	errUnknownBiomarker      = errors.New("unknown biomarker")
	errValueRequired         = errors.New("value is required")
	errOutputRequired        = errors.New("output file is required")
)
