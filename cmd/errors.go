/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errCSRFSecretRequired    = errors.New("CSRF_SECRET is required")
	errBackendURLRequired    = errors.New("backend-url is required (set via --backend-url or BACKEND_URL env var)")
	errTooManyReportSources  = errors.New("pass either a report file or --text, not both")
)
