/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/metabolx/metabolx/chat"
)

const (
	chatConversationSessionKey = "chat_conversation_id"
	chatOpenSessionKey         = "chat_open"
	chatEmojiOpenSessionKey    = "chat_emoji_open"
	chatDraftSessionKey        = "chat_draft"
	chatCursorSessionKey       = "chat_cursor"
	chatSuggestionsSessionKey  = "chat_suggestions"
)

// ChatView is the template model of the chat widget.
type ChatView struct {
	Widget          chat.Widget
	Messages        []chat.Message
	QuickReplies    []string
	EmojiCategories []chat.EmojiCategory
	Suggestions     []string
	Draft           string
	Cursor          int
}

// ChatWidget serves the chat widget present on every page.
type ChatWidget struct {
	store   chat.HistoryStore
	replier chat.Replier
	catalog *chat.Catalog
}

// NewChatWidget returns the chat widget handlers. A nil catalog uses the
// embedded default.
func NewChatWidget(store chat.HistoryStore, replier chat.Replier, catalog *chat.Catalog) *ChatWidget {
	if catalog == nil {
		catalog = chat.DefaultCatalog()
	}
	return &ChatWidget{store: store, replier: replier, catalog: catalog}
}

func (w *ChatWidget) conversation(s session.Session) *chat.Conversation {
	id, err := conversationID(s)
	if err != nil {
		id = uuid.New()
		s.Set(chatConversationSessionKey, id.String())
	}
	return chat.NewConversation(id, w.store, w.replier, w.catalog)
}

func conversationID(s session.Session) (uuid.UUID, error) {
	raw, ok := s.Get(chatConversationSessionKey).(string)
	if !ok || raw == "" {
		return uuid.Nil, errInvalidConversationID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errInvalidConversationID, err)
	}

	return id, nil
}

func widgetState(s session.Session) chat.Widget {
	open, _ := s.Get(chatOpenSessionKey).(bool)
	emojiOpen, _ := s.Get(chatEmojiOpenSessionKey).(bool)
	return chat.Widget{Open: open, EmojiPickerOpen: emojiOpen}
}

func saveWidgetState(s session.Session, w chat.Widget) {
	s.Set(chatOpenSessionKey, w.Open)
	s.Set(chatEmojiOpenSessionKey, w.EmojiPickerOpen)
}

// Inject loads the widget into template data as "Chat". History is only
// read while the widget is open.
func (w *ChatWidget) Inject() flamego.Handler {
	return func(c flamego.Context, s session.Session, data template.Data) {
		state := widgetState(s)

		view := ChatView{
			Widget:       state,
			QuickReplies: w.catalog.Phrases(),
		}
		view.EmojiCategories = w.catalog.Emoji
		view.Draft, _ = s.Get(chatDraftSessionKey).(string)
		view.Cursor, _ = s.Get(chatCursorSessionKey).(int)
		view.Suggestions, _ = s.Get(chatSuggestionsSessionKey).([]string)

		if state.Open {
			if _, err := conversationID(s); err == nil {
				msgs, err := w.conversation(s).History(c.Request().Context())
				if err != nil {
					webLogger.Error("Failed to load chat history", "error", err)
				}
				view.Messages = msgs
			}
		}

		data["Chat"] = view
	}
}

// Send posts the message to the chat backend and records both turns.
func (w *ChatWidget) Send(c flamego.Context, s session.Session) {
	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	back := returnPath(c)
	message := c.Request().Form.Get("message")

	ex, err := w.conversation(s).Send(c.Request().Context(), message)
	switch {
	case errors.Is(err, chat.ErrNothingToSend):
		c.Redirect(back, http.StatusSeeOther)
		return
	case err != nil:
		webLogger.Error("Failed to record chat message", "error", err)
		SetErrorFlash(s, chat.Apology)
		s.Set(chatDraftSessionKey, message)
		c.Redirect(back, http.StatusSeeOther)
		return
	}

	state := widgetState(s)
	state.Open = true
	saveWidgetState(s, state)

	s.Delete(chatDraftSessionKey)
	s.Delete(chatCursorSessionKey)
	s.Set(chatSuggestionsSessionKey, ex.Suggestions)

	c.Redirect(back, http.StatusSeeOther)
}

// Toggle opens or closes the widget.
func (w *ChatWidget) Toggle(c flamego.Context, s session.Session) {
	_ = c.Request().ParseForm()

	state := widgetState(s)
	if c.Request().Form.Get("action") == "close" {
		state.Close()
	} else {
		state.Toggle()
	}
	saveWidgetState(s, state)

	c.Redirect(returnPath(c), http.StatusSeeOther)
}

// ToggleEmojiPicker shows or hides the emoji picker and keeps the draft.
func (w *ChatWidget) ToggleEmojiPicker(c flamego.Context, s session.Session) {
	_ = c.Request().ParseForm()

	state := widgetState(s)
	state.ToggleEmojiPicker()
	saveWidgetState(s, state)

	draft := c.Request().Form.Get("message")
	s.Set(chatDraftSessionKey, draft)
	s.Set(chatCursorSessionKey, len([]rune(draft)))

	c.Redirect(returnPath(c), http.StatusSeeOther)
}

// InsertEmoji puts the chosen emoji into the draft at the posted selection
// and closes the picker.
func (w *ChatWidget) InsertEmoji(c flamego.Context, s session.Session) {
	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	form := c.Request().Form
	back := returnPath(c)
	draft := form.Get("message")

	emoji := form.Get("emoji")

	end := len([]rune(draft))
	start, err := selectionOffset(form.Get("selection_start"), end)
	if err != nil {
		start = end
	}
	stop, err := selectionOffset(form.Get("selection_end"), start)
	if err != nil {
		stop = start
	}

	state := widgetState(s)

	text, cursor, err := state.ChooseEmoji(w.catalog, draft, start, stop, emoji)
	if errors.Is(err, chat.ErrUnknownEmoji) {
		SetErrorFlash(s, "Unknown emoji")
		c.Redirect(back, http.StatusSeeOther)
		return
	}

	saveWidgetState(s, state)

	s.Set(chatDraftSessionKey, text)
	s.Set(chatCursorSessionKey, cursor)

	c.Redirect(back, http.StatusSeeOther)
}

// selectionOffset parses a rune offset, defaulting to fallback when empty.
func selectionOffset(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidSelection, err)
	}

	return n, nil
}

// Suggest lists the quick replies matching the typed draft.
func (w *ChatWidget) Suggest(c flamego.Context, s session.Session) {
	_ = c.Request().ParseForm()

	draft := c.Request().Form.Get("message")
	s.Set(chatDraftSessionKey, draft)
	s.Set(chatSuggestionsSessionKey, w.catalog.MatchInput(draft))

	c.Redirect(returnPath(c), http.StatusSeeOther)
}

// QuickReply copies a catalog phrase into the draft.
func (w *ChatWidget) QuickReply(c flamego.Context, s session.Session) {
	_ = c.Request().ParseForm()

	phrase := c.Request().Form.Get("phrase")
	if !slices.Contains(w.catalog.Phrases(), phrase) {
		SetErrorFlash(s, "Unknown quick reply")
		c.Redirect(returnPath(c), http.StatusSeeOther)
		return
	}

	s.Set(chatDraftSessionKey, phrase)
	s.Set(chatCursorSessionKey, len([]rune(phrase)))
	s.Delete(chatSuggestionsSessionKey)

	c.Redirect(returnPath(c), http.StatusSeeOther)
}

// Clear deletes the conversation history.
func (w *ChatWidget) Clear(c flamego.Context, s session.Session) {
	_ = c.Request().ParseForm()

	if _, err := conversationID(s); err == nil {
		if err := w.conversation(s).Reset(c.Request().Context()); err != nil {
			webLogger.Error("Failed to clear chat history", "error", err)
			SetErrorFlash(s, "Failed to clear chat history")
			c.Redirect(returnPath(c), http.StatusSeeOther)
			return
		}
	}

	s.Delete(chatSuggestionsSessionKey)
	s.Delete(chatDraftSessionKey)
	SetSuccessFlash(s, "Conversation cleared")

	c.Redirect(returnPath(c), http.StatusSeeOther)
}
