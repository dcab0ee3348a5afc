/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errInvalidConversationID = errors.New("invalid conversation id")
	errInvalidSelection      = errors.New("invalid selection offset")
)
