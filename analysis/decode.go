/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// DecodePayload parses the dashboard query parameter. The value may still be
// URL-encoded once more on top of query decoding, as the backend encodes the
// JSON before placing it in the redirect URL. An empty payload is an empty
// result.
//
// On error the returned Result is still usable: every field falls back to its
// zero value so the dashboard renders placeholders.
func DecodePayload(raw string) (*Result, error) {
	result := &Result{}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return result, nil
	}

	decoded := raw
	if !strings.HasPrefix(raw, "{") {
		unescaped, err := url.PathUnescape(raw)
		if err != nil {
			return result, fmt.Errorf("%w: %w", errPayloadEncoding, err)
		}
		decoded = unescaped
	}

	if err := json.Unmarshal([]byte(decoded), result); err != nil {
		return &Result{}, fmt.Errorf("%w: %w", errPayloadJSON, err)
	}

	return result, nil
}
