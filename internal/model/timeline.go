// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core.
package model

// =============================================================================
// TIMELINE TYPE
// =============================================================================

// Timeline is the append-only, insertion-ordered list of committed messages.
// Elements are never removed or reordered; insertion order is display order.
// Not safe for concurrent use.
type Timeline struct {
	messages  []Message
	listeners listeners[Message]
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		messages: make([]Message, 0),
	}
}

// Append adds msg as the new last element and then notifies subscribers.
// There is no deduplication and no size cap. The only rejection is a message
// with blank text.
func (t *Timeline) Append(msg Message) error {
	if IsBlank(msg.Text) {
		return ErrBlankMessage
	}
	t.messages = append(t.messages, msg)
	t.listeners.notify(msg)
	return nil
}

// All returns a copy of the messages in display order.
func (t *Timeline) All() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Timeline) Len() int {
	return len(t.messages)
}

// Last returns the most recent message.
func (t *Timeline) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Subscribe registers fn to run after every successful Append.
// The returned function removes the subscription.
func (t *Timeline) Subscribe(fn func(Message)) (unsubscribe func()) {
	return t.listeners.add(fn)
}
