/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

import "unicode/utf8"

// InsertEmoji replaces the selection [start, end) of text with emoji and
// returns the new text and the cursor position just after the emoji.
// Offsets count runes and are clamped to the text.
func InsertEmoji(text string, start, end int, emoji string) (string, int) {
	runes := []rune(text)

	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	out := make([]rune, 0, len(runes)+utf8.RuneCountInString(emoji))
	out = append(out, runes[:start]...)
	out = append(out, []rune(emoji)...)
	out = append(out, runes[end:]...)

	return string(out), start + utf8.RuneCountInString(emoji)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
