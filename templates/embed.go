/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package templates

import "embed"

// Templates holds the page, dashboard and chat widget templates.
//
//go:embed *.html
var Templates embed.FS
