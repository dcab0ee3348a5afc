// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package chat

import (
	"errors"
	"testing"
)

func TestInsertEmoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		start, end int
		emoji      string
		want       string
		wantCursor int
	}{
		{name: "at end", text: "hi", start: 2, end: 2, emoji: "😊", want: "hi😊", wantCursor: 3},
		{name: "replaces selection", text: "I feel bad", start: 7, end: 10, emoji: "😢", want: "I feel 😢", wantCursor: 8},
		{name: "after multibyte", text: "é😊x", start: 2, end: 2, emoji: "👍", want: "é😊👍x", wantCursor: 3},
		{name: "clamps offsets", text: "ab", start: -3, end: 99, emoji: "💪", want: "💪", wantCursor: 1},
		{name: "end before start", text: "abc", start: 2, end: 1, emoji: "📝", want: "ab📝c", wantCursor: 3},
		{name: "multi rune emoji", text: "", start: 0, end: 0, emoji: "❤️", want: "❤️", wantCursor: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, cursor := InsertEmoji(tt.text, tt.start, tt.end, tt.emoji)
			if got != tt.want || cursor != tt.wantCursor {
				t.Fatalf("InsertEmoji = (%q, %d), want (%q, %d)", got, cursor, tt.want, tt.wantCursor)
			}
		})
	}
}

func TestWidgetToggles(t *testing.T) {
	t.Parallel()

	var w Widget

	w.ToggleEmojiPicker()
	if w.Open || !w.EmojiPickerOpen {
		t.Fatalf("picker toggle must not open the window: %#v", w)
	}

	w.Toggle()
	if !w.Open || !w.EmojiPickerOpen {
		t.Fatalf("window toggle must not touch the picker: %#v", w)
	}

	text, cursor, err := w.ChooseEmoji(DefaultCatalog(), "ok", 2, 2, "👍")
	if err != nil || text != "ok👍" || cursor != 3 || w.EmojiPickerOpen {
		t.Fatalf("unexpected ChooseEmoji result %q %d %v %#v", text, cursor, err, w)
	}

	w.ToggleEmojiPicker()
	text, _, err = w.ChooseEmoji(DefaultCatalog(), "ok", 2, 2, "<b>")
	if !errors.Is(err, ErrUnknownEmoji) || text != "ok" || !w.EmojiPickerOpen {
		t.Fatalf("unknown emoji must be rejected without side effects: %q %v %#v", text, err, w)
	}

	w.Close()
	if w.Open {
		t.Fatal("expected closed window")
	}
}
