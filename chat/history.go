/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// HistoryStore persists the messages of each conversation in order.
type HistoryStore interface {
	Append(ctx context.Context, conversationID uuid.UUID, m Message) error
	List(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	Clear(ctx context.Context, conversationID uuid.UUID) error
}

// MemoryStore keeps conversations in process memory. History is lost on
// restart.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID][]Message
	limit         int
}

// NewMemoryStore returns a MemoryStore keeping at most limit messages per
// conversation. A limit of 0 keeps everything.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		conversations: make(map[uuid.UUID][]Message),
		limit:         limit,
	}
}

// Append implements HistoryStore.
func (s *MemoryStore) Append(_ context.Context, conversationID uuid.UUID, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.conversations[conversationID], m)
	if s.limit > 0 && len(msgs) > s.limit {
		msgs = slices.Clone(msgs[len(msgs)-s.limit:])
	}
	s.conversations[conversationID] = msgs

	return nil
}

// List implements HistoryStore.
func (s *MemoryStore) List(_ context.Context, conversationID uuid.UUID) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.conversations[conversationID]), nil
}

// Clear implements HistoryStore.
func (s *MemoryStore) Clear(_ context.Context, conversationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, conversationID)

	return nil
}
