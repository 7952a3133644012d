// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core.
package model

import (
	"github.com/jeranaias/planchat/internal/clock"
)

// =============================================================================
// COMPOSER STATE
// =============================================================================

// State is the composer's position in the Idle/Composing state machine.
type State int

const (
	StateIdle      State = iota // Draft is blank
	StateComposing              // Draft has non-blank content
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	default:
		return "unknown"
	}
}

// =============================================================================
// COMPOSER
// =============================================================================

// Composer owns the draft and produces at most one Message per successful
// submit. Not safe for concurrent use.
type Composer struct {
	draft     string
	ids       IDSource
	clock     clock.Clock
	formatter *clock.Formatter
	listeners listeners[string]
}

// NewComposer creates a composer with an empty draft.
// Nil collaborators fall back to MonotonicIDs, the system clock and the
// default locale formatter.
func NewComposer(ids IDSource, c clock.Clock, f *clock.Formatter) *Composer {
	if c == nil {
		c = clock.System{}
	}
	if ids == nil {
		ids = NewMonotonicIDs(c)
	}
	if f == nil {
		f = clock.MustFormatter(clock.DefaultLocale, "")
	}
	return &Composer{
		ids:       ids,
		clock:     c,
		formatter: f,
	}
}

// Draft returns the current draft, verbatim.
func (c *Composer) Draft() string {
	return c.draft
}

// State reports Idle for a blank draft and Composing otherwise.
func (c *Composer) State() State {
	if IsBlank(c.draft) {
		return StateIdle
	}
	return StateComposing
}

// UpdateDraft replaces the draft verbatim. Any string is accepted, including
// white space only.
func (c *Composer) UpdateDraft(text string) {
	if text == c.draft {
		return
	}
	c.draft = text
	c.listeners.notify(c.draft)
}

// TrySubmit commits the draft. A blank draft is a silent no-op: nothing is
// created and the draft is left as it was. Otherwise the returned message
// carries the untrimmed draft and the draft is cleared.
func (c *Composer) TrySubmit() (Message, bool) {
	if IsBlank(c.draft) {
		return Message{}, false
	}

	now := c.clock.Now()
	msg := Message{
		ID:        c.ids.NewID(),
		Text:      c.draft,
		Timestamp: c.formatter.Format(now),
		CreatedAt: now,
	}

	c.draft = ""
	c.listeners.notify(c.draft)
	return msg, true
}

// SetFormatter swaps the timestamp formatter used for future messages.
// Already committed messages keep their timestamp.
func (c *Composer) SetFormatter(f *clock.Formatter) {
	if f != nil {
		c.formatter = f
	}
}

// Subscribe registers fn to run after every draft change, including the clear
// that follows a successful submit.
func (c *Composer) Subscribe(fn func(draft string)) (unsubscribe func()) {
	return c.listeners.add(fn)
}
