/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "errors"

var (
	// ErrShareURLTooLong is returned when a dashboard URL does not fit in a QR code.
	ErrShareURLTooLong = errors.New("dashboard URL is too long for a QR code")
	errEmptyShareURL   = errors.New("dashboard URL is empty")
)
