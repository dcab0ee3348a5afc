// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestShareQRCode(t *testing.T) {
	t.Parallel()

	png, err := ShareQRCode("https://example.com/dashboard?data=%7B%7D")
	if err != nil {
		t.Fatalf("ShareQRCode failed: %v", err)
	}

	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected PNG output")
	}
}

func TestShareQRCodeRejectsOversizedURL(t *testing.T) {
	t.Parallel()

	_, err := ShareQRCode("https://example.com/?data=" + strings.Repeat("a", maxShareURLBytes))
	if !errors.Is(err, ErrShareURLTooLong) {
		t.Fatalf("expected ErrShareURLTooLong, got %v", err)
	}

	if _, err := ShareQRCode(" "); err == nil {
		t.Fatal("expected error for empty URL")
	}
}
