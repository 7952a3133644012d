// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session wires render-surface events to the conversation core.
package session

import (
	"strings"

	"github.com/jeranaias/planchat/internal/model"
)

// =============================================================================
// KEY EVENTS
// =============================================================================

// Key names a key reported by a render surface.
type Key string

// KeyEnter is the commit key.
const KeyEnter Key = "enter"

// Modifiers is the set of modifier keys held during a key event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// DefaultBreakModifiers request a line break instead of a commit.
const DefaultBreakModifiers = ModShift | ModAlt

// Has reports whether any modifier in o is held.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o != 0
}

// String returns a "+"-joined description such as "shift+alt".
func (m Modifiers) String() string {
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	return strings.Join(parts, "+")
}

// ParseModifier maps a config name to a modifier. Unknown names return 0.
func ParseModifier(name string) Modifiers {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ModShift
	case "alt", "option", "meta":
		return ModAlt
	case "ctrl", "control":
		return ModCtrl
	default:
		return 0
	}
}

// ParseModifiers combines config names into one set. Unknown names are ignored.
func ParseModifiers(names []string) Modifiers {
	var m Modifiers
	for _, name := range names {
		m |= ParseModifier(name)
	}
	return m
}

// KeyEvent is a key-down reported by a render surface.
type KeyEvent struct {
	Key       Key
	Modifiers Modifiers
}

// =============================================================================
// CHANGE NOTIFICATIONS
// =============================================================================

// ChangeKind identifies what changed in a session.
type ChangeKind int

const (
	ChangeDraft           ChangeKind = iota // Draft text replaced or cleared
	ChangeAppended                          // Message appended to the timeline
	ChangeScrollRequested                   // Scroll-to-latest is pending
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeDraft:
		return "draft"
	case ChangeAppended:
		return "appended"
	case ChangeScrollRequested:
		return "scroll_requested"
	default:
		return "unknown"
	}
}

// Change describes one observable state change.
type Change struct {
	Kind    ChangeKind
	Draft   string        // Set for ChangeDraft
	Message model.Message // Set for ChangeAppended
	Scroll  ScrollRequest // Set for ChangeScrollRequested
}
