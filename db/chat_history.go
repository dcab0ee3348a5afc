/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metabolx/metabolx/chat"
)

// ChatHistoryStore keeps chat messages in PostgreSQL. It implements
// chat.HistoryStore.
type ChatHistoryStore struct {
	// Limit is the number of most recent messages List returns. Zero
	// returns all of them.
	Limit int
}

var _ chat.HistoryStore = (*ChatHistoryStore)(nil)

// NewChatHistoryStore returns a store that lists at most limit messages.
func NewChatHistoryStore(limit int) *ChatHistoryStore {
	return &ChatHistoryStore{Limit: limit}
}

// Append implements chat.HistoryStore.
func (s *ChatHistoryStore) Append(ctx context.Context, conversationID uuid.UUID, m chat.Message) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO chat_messages (id, conversation_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, conversationID, string(m.Role), m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	return nil
}

// List implements chat.HistoryStore. Messages are returned oldest first.
func (s *ChatHistoryStore) List(ctx context.Context, conversationID uuid.UUID) ([]chat.Message, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	limit := s.Limit
	if limit <= 0 {
		limit = -1
	}

	// LIMIT NULL means no limit.
	rows, err := pool.Query(ctx, `
		SELECT id, role, content, created_at FROM (
			SELECT id, role, content, created_at, seq
			FROM chat_messages
			WHERE conversation_id = $1
			ORDER BY seq DESC
			LIMIT NULLIF($2::int, -1)
		) recent
		ORDER BY seq ASC
	`, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message

	for rows.Next() {
		var (
			m    chat.Message
			role string
		)

		if err := rows.Scan(&m.ID, &role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}

		m.Role = chat.Role(role)
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}

	return messages, nil
}

// Clear implements chat.HistoryStore.
func (s *ChatHistoryStore) Clear(ctx context.Context, conversationID uuid.UUID) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM chat_messages WHERE conversation_id = $1`, conversationID)
	if err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}

	logger.Debug("Cleared chat history", "conversation", conversationID, "deleted", tag.RowsAffected())

	return nil
}
