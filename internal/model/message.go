// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core.
package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrBlankMessage is returned when a message with blank text is appended.
var ErrBlankMessage = errors.New("message text is blank")

// =============================================================================
// MESSAGE ID
// =============================================================================

// MessageID identifies a message within a session. IDs are never reused.
type MessageID uint64

// String returns the decimal form of the ID.
func (id MessageID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a committed message. Values are never modified after creation.
type Message struct {
	ID        MessageID `json:"id"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// Preview returns a rune-safe truncated preview of the message text.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// BLANK DETECTION
// =============================================================================

// IsBlank reports whether s is empty once leading and trailing white space is
// stripped. White space covers Unicode spaces, line terminators and the byte
// order mark (U+FEFF).
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isTrimmable) == ""
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
