/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

import "errors"

var (
	// ErrNothingToSend is returned by Send for a blank message. Callers treat
	// it as a no-op.
	ErrNothingToSend = errors.New("nothing to send")
	// ErrUnknownEmoji is returned when an emoji is not in the catalog.
	ErrUnknownEmoji = errors.New("emoji not in catalog")

	errEmptyCatalog = errors.New("catalog has no quick replies")
)
