/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/metabolx/metabolx/logging"
)

// Apology is the assistant message shown when the chat backend cannot be
// reached.
const Apology = "I apologize, but I encountered an error. Please try again."

var logger = logging.Logger(logging.SourceChat)

// Replier produces the assistant reply to a user message.
type Replier interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Exchange is the result of one Send.
type Exchange struct {
	User        Message
	Reply       Message
	Suggestions []string
	// Failed is set when the reply is the apology.
	Failed bool
}

// Conversation is a chat session backed by a HistoryStore.
type Conversation struct {
	ID      uuid.UUID
	store   HistoryStore
	replier Replier
	catalog *Catalog
	now     func() time.Time
}

// NewConversation returns a conversation. A nil catalog uses the embedded
// default.
func NewConversation(id uuid.UUID, store HistoryStore, replier Replier, catalog *Catalog) *Conversation {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Conversation{
		ID:      id,
		store:   store,
		replier: replier,
		catalog: catalog,
		now:     time.Now,
	}
}

// Send appends the user message, asks the replier and appends the reply.
// A blank message returns ErrNothingToSend and records nothing. Replier
// failures are not returned: the apology is recorded in place of a reply.
func (c *Conversation) Send(ctx context.Context, text string) (Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Exchange{}, ErrNothingToSend
	}

	user := NewMessage(RoleUser, text, c.now())
	if err := c.store.Append(ctx, c.ID, user); err != nil {
		return Exchange{}, fmt.Errorf("failed to save message: %w", err)
	}

	ex := Exchange{User: user}

	reply, err := c.replier.Chat(ctx, text)
	if err != nil {
		logger.Error("Chat request failed", "conversation", c.ID, "error", err)
		reply = Apology
		ex.Failed = true
	}

	ex.Reply = NewMessage(RoleAI, reply, c.now())
	if err := c.store.Append(ctx, c.ID, ex.Reply); err != nil {
		return ex, fmt.Errorf("failed to save reply: %w", err)
	}

	if !ex.Failed {
		ex.Suggestions = c.catalog.Suggestions(reply)
	}

	return ex, nil
}

// History returns the messages of the conversation, oldest first.
func (c *Conversation) History(ctx context.Context) ([]Message, error) {
	msgs, err := c.store.List(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return msgs, nil
}

// Reset removes every message of the conversation.
func (c *Conversation) Reset(ctx context.Context) error {
	if err := c.store.Clear(ctx, c.ID); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
