// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"testing"

	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/metabolx/metabolx/chat"
)

type stubReplier struct {
	reply string
	err   error
	calls int
}

func (r *stubReplier) Chat(context.Context, string) (string, error) {
	r.calls++
	return r.reply, r.err
}

func newChatTestApp(s *testSession, replier chat.Replier) (*templateStubApp, template.Data, chat.HistoryStore) {
	store := chat.NewMemoryStore(0)
	widget := NewChatWidget(store, replier, nil)

	data := template.Data{}
	tpl := &templateStub{}
	f := newTestApp(s, tpl, data)
	f.Get("/", widget.Inject(), func() {
		tpl.HTML(http.StatusOK, "index")
	})
	f.Post("/chat/send", widget.Send)
	f.Post("/chat/toggle", widget.Toggle)
	f.Post("/chat/emoji-picker", widget.ToggleEmojiPicker)
	f.Post("/chat/emoji", widget.InsertEmoji)
	f.Post("/chat/suggest", widget.Suggest)
	f.Post("/chat/quick-reply", widget.QuickReply)
	f.Post("/chat/clear", widget.Clear)

	return &templateStubApp{Flame: f, tpl: tpl}, data, store
}

func renderChatView(t *testing.T, app *templateStubApp, data template.Data) ChatView {
	t.Helper()

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	view, ok := data["Chat"].(ChatView)
	if !ok {
		t.Fatalf("expected chat view, got %T", data["Chat"])
	}
	return view
}

func TestChatSendRecordsExchange(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	replier := &stubReplier{reply: "Regular analysis has many benefits."}
	app, data, _ := newChatTestApp(s, replier)

	rec := performFormPOST(t, app.Flame, "/chat/send", url.Values{
		"message":   {"What is MetabolX?"},
		"return_to": {"/dashboard?data=%7B%7D"},
	})
	assertRedirect(t, rec, "/dashboard?data=%7B%7D")
	assertNoFlash(t, s)

	view := renderChatView(t, app, data)

	if !view.Widget.Open {
		t.Fatal("expected widget to stay open after sending")
	}
	if len(view.Messages) != 2 || !view.Messages[0].IsUser() || view.Messages[1].Content != replier.reply {
		t.Fatalf("unexpected messages %#v", view.Messages)
	}
	if !slices.Equal(view.Suggestions, []string{"What are the benefits?"}) {
		t.Fatalf("unexpected suggestions %v", view.Suggestions)
	}
	if len(view.QuickReplies) != 8 || len(view.EmojiCategories) != 4 {
		t.Fatalf("expected catalog in view, got %d replies %d categories", len(view.QuickReplies), len(view.EmojiCategories))
	}
}

func TestChatSendBlankIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	replier := &stubReplier{reply: "unused"}
	app, _, _ := newChatTestApp(s, replier)

	rec := performFormPOST(t, app.Flame, "/chat/send", url.Values{"message": {"   "}})

	assertRedirect(t, rec, "/")
	assertNoFlash(t, s)

	if replier.calls != 0 {
		t.Fatal("blank message must not reach the backend")
	}
}

func TestChatSendBackendFailureShowsApology(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	app, data, _ := newChatTestApp(s, &stubReplier{err: errors.New("connection refused")})

	performFormPOST(t, app.Flame, "/chat/send", url.Values{"message": {"hello"}})

	view := renderChatView(t, app, data)
	if len(view.Messages) != 2 || view.Messages[1].Content != chat.Apology {
		t.Fatalf("expected apology, got %#v", view.Messages)
	}
}

func TestChatWidgetToggles(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	app, data, _ := newChatTestApp(s, &stubReplier{})

	performFormPOST(t, app.Flame, "/chat/emoji-picker", url.Values{"message": {"draft"}})

	view := renderChatView(t, app, data)
	if view.Widget.Open || !view.Widget.EmojiPickerOpen || view.Draft != "draft" {
		t.Fatalf("unexpected state after picker toggle %#v", view)
	}

	performFormPOST(t, app.Flame, "/chat/toggle", nil)
	performFormPOST(t, app.Flame, "/chat/toggle", url.Values{"action": {"close"}})

	view = renderChatView(t, app, data)
	if view.Widget.Open || !view.Widget.EmojiPickerOpen {
		t.Fatalf("window toggles must not touch the picker %#v", view.Widget)
	}
}

func TestChatInsertEmoji(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	s.Set(chatEmojiOpenSessionKey, true)
	app, data, _ := newChatTestApp(s, &stubReplier{})

	rec := performFormPOST(t, app.Flame, "/chat/emoji", url.Values{
		"message":         {"I feel great"},
		"selection_start": {"7"},
		"selection_end":   {"12"},
		"emoji":           {"💪"},
	})
	assertRedirect(t, rec, "/")

	view := renderChatView(t, app, data)
	if view.Draft != "I feel 💪" || view.Cursor != 8 {
		t.Fatalf("unexpected draft %q cursor %d", view.Draft, view.Cursor)
	}
	if view.Widget.EmojiPickerOpen {
		t.Fatal("choosing an emoji must close the picker")
	}

	rec = performFormPOST(t, app.Flame, "/chat/emoji", url.Values{"message": {"x"}, "emoji": {"<script>"}})
	assertRedirect(t, rec, "/")
	assertFlash(t, s, FlashError, "Unknown emoji")
}

func TestChatSuggestAndQuickReply(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	replier := &stubReplier{}
	app, data, _ := newChatTestApp(s, replier)

	performFormPOST(t, app.Flame, "/chat/suggest", url.Values{"message": {"secure"}})

	view := renderChatView(t, app, data)
	if !slices.Equal(view.Suggestions, []string{"Is my data secure?"}) {
		t.Fatalf("unexpected suggestions %v", view.Suggestions)
	}

	performFormPOST(t, app.Flame, "/chat/quick-reply", url.Values{"phrase": {"Is my data secure?"}})

	view = renderChatView(t, app, data)
	if view.Draft != "Is my data secure?" || view.Suggestions != nil {
		t.Fatalf("unexpected view after quick reply %#v", view)
	}
	if replier.calls != 0 || len(view.Messages) != 0 {
		t.Fatalf("expected quick reply to only fill the draft, got %d calls", replier.calls)
	}
}

func TestChatClear(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	app, _, store := newChatTestApp(s, &stubReplier{reply: "ok"})

	performFormPOST(t, app.Flame, "/chat/send", url.Values{"message": {"hello"}})

	id, err := uuid.Parse(s.Get(chatConversationSessionKey).(string))
	if err != nil {
		t.Fatalf("expected conversation id in session: %v", err)
	}

	rec := performFormPOST(t, app.Flame, "/chat/clear", nil)
	assertRedirect(t, rec, "/")
	assertFlash(t, s, FlashSuccess, "Conversation cleared")

	msgs, _ := store.List(context.Background(), id)
	if len(msgs) != 0 {
		t.Fatalf("expected history to be cleared, got %d", len(msgs))
	}
}
