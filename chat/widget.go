/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

// Widget is the visibility state of the chat window and its emoji picker.
// The two toggles are independent.
type Widget struct {
	Open            bool
	EmojiPickerOpen bool
}

// Toggle opens or closes the chat window.
func (w *Widget) Toggle() {
	w.Open = !w.Open
}

// Close hides the chat window.
func (w *Widget) Close() {
	w.Open = false
}

// ToggleEmojiPicker shows or hides the emoji picker.
func (w *Widget) ToggleEmojiPicker() {
	w.EmojiPickerOpen = !w.EmojiPickerOpen
}

// ChooseEmoji inserts a catalog emoji into the draft and closes the picker.
// Emoji outside the catalog return ErrUnknownEmoji and leave the draft and
// the picker as they were.
func (w *Widget) ChooseEmoji(catalog *Catalog, draft string, start, end int, emoji string) (string, int, error) {
	if !catalog.HasEmoji(emoji) {
		return draft, start, ErrUnknownEmoji
	}

	w.EmojiPickerOpen = false
	text, cursor := InsertEmoji(draft, start, end, emoji)

	return text, cursor, nil
}
