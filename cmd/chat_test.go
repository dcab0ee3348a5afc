// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/metabolx/metabolx/chat"
)

type scriptedReplier struct {
	reply string
	err   error
	calls int
}

func (r *scriptedReplier) Chat(_ context.Context, _ string) (string, error) {
	r.calls++
	return r.reply, r.err
}

func TestRunChatPrintsReplyAndSuggestions(t *testing.T) {
	t.Parallel()

	replier := &scriptedReplier{reply: "MetabolX reads your blood report. Curious about the benefits?"}
	store := chat.NewMemoryStore(0)
	conv := chat.NewConversation(uuid.New(), store, replier, chat.DefaultCatalog())

	var out bytes.Buffer
	in := strings.NewReader("\nWhat is MetabolX?\n/quit\nnever sent\n")

	if err := runChat(context.Background(), conv, chat.DefaultCatalog(), in, &out, noWait); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if replier.calls != 1 {
		t.Fatalf("expected one backend call, got %d", replier.calls)
	}

	got := out.String()
	if !strings.Contains(got, "MetabolX reads your blood report.") {
		t.Fatalf("expected reply in output, got %q", got)
	}
	if !strings.Contains(got, "Suggestions:") || !strings.Contains(got, "  - What are the benefits?") {
		t.Fatalf("expected benefits suggestion, got %q", got)
	}
}

func TestRunChatPrintsApologyOnFailure(t *testing.T) {
	t.Parallel()

	replier := &scriptedReplier{err: errors.New(http.StatusText(http.StatusBadGateway))}
	conv := chat.NewConversation(uuid.New(), chat.NewMemoryStore(0), replier, chat.DefaultCatalog())

	var out bytes.Buffer
	if err := runChat(context.Background(), conv, chat.DefaultCatalog(), strings.NewReader("hello\n"), &out, noWait); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.String(); !strings.Contains(got, chat.Apology) {
		t.Fatalf("expected apology, got %q", got)
	}
}

func TestRunChatClearAndListings(t *testing.T) {
	t.Parallel()

	replier := &scriptedReplier{reply: "ok"}
	conv := chat.NewConversation(uuid.New(), chat.NewMemoryStore(0), replier, chat.DefaultCatalog())

	var out bytes.Buffer
	in := strings.NewReader("hi\n/clear\n/replies\n/emoji\n")

	if err := runChat(context.Background(), conv, chat.DefaultCatalog(), in, &out, noWait); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := conv.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected history error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected cleared history, got %d messages", len(history))
	}

	got := out.String()
	for _, want := range []string{"Conversation cleared", "Quick replies:", "What is MetabolX?", "Health:"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
}
