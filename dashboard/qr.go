/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	shareQRSize = 256

	// maxShareURLBytes is the byte capacity of a version 40 QR code at
	// medium error correction.
	maxShareURLBytes = 2331
)

// ShareQRCode encodes a dashboard URL as a PNG QR code so it can be opened
// on another device.
func ShareQRCode(dashboardURL string) ([]byte, error) {
	dashboardURL = strings.TrimSpace(dashboardURL)
	if dashboardURL == "" {
		return nil, errEmptyShareURL
	}
	if len(dashboardURL) > maxShareURLBytes {
		return nil, ErrShareURLTooLong
	}

	png, err := qrcode.Encode(dashboardURL, qrcode.Medium, shareQRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return png, nil
}
