/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import "errors"

var (
	errPayloadEncoding = errors.New("analysis payload is not valid URL encoding")
	errPayloadJSON     = errors.New("analysis payload is not a JSON object")
)
