/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chat

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// QuickReply is a predefined chat phrase. Keywords widen the set of answers
// after which the phrase is suggested.
type QuickReply struct {
	Phrase   string   `yaml:"phrase"`
	Keywords []string `yaml:"keywords"`
}

// EmojiCategory is a titled group in the emoji picker.
type EmojiCategory struct {
	Name  string   `yaml:"category"`
	Items []string `yaml:"items"`
}

// Catalog holds the quick replies and emoji categories in display order.
type Catalog struct {
	QuickReplies []QuickReply    `yaml:"quick_replies"`
	Emoji        []EmojiCategory `yaml:"emoji"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded chat catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadCatalog parses a YAML catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.QuickReplies) == 0 {
		return nil, errEmptyCatalog
	}
	return &c, nil
}

// Phrases returns the quick-reply phrases in catalog order.
func (c *Catalog) Phrases() []string {
	out := make([]string, 0, len(c.QuickReplies))
	for _, q := range c.QuickReplies {
		out = append(out, q.Phrase)
	}
	return out
}

// Suggestions returns the phrases relevant to an assistant reply: those
// whose text or one of whose keywords occurs in the reply, ignoring case.
func (c *Catalog) Suggestions(reply string) []string {
	reply = strings.ToLower(reply)
	if strings.TrimSpace(reply) == "" {
		return nil
	}

	var out []string
	for _, q := range c.QuickReplies {
		if q.matches(reply) {
			out = append(out, q.Phrase)
		}
	}
	return out
}

func (q QuickReply) matches(lowerReply string) bool {
	if strings.Contains(lowerReply, strings.ToLower(q.Phrase)) {
		return true
	}
	for _, k := range q.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(lowerReply, k) {
			return true
		}
	}
	return false
}

// MatchInput returns the phrases containing the typed text, ignoring case.
// Empty input matches nothing.
func (c *Catalog) MatchInput(value string) []string {
	value = strings.ToLower(value)
	if value == "" {
		return nil
	}

	var out []string
	for _, q := range c.QuickReplies {
		if strings.Contains(strings.ToLower(q.Phrase), value) {
			out = append(out, q.Phrase)
		}
	}
	return out
}

// HasEmoji reports whether e appears in any category.
func (c *Catalog) HasEmoji(e string) bool {
	for _, cat := range c.Emoji {
		for _, item := range cat.Items {
			if item == e {
				return true
			}
		}
	}
	return false
}
