// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/planchat/internal/session"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the chat view.
// Enter is not part of the map: it is routed through the session, which
// decides between commit and line break.
type KeyMap struct {
	Newline  key.Binding
	Send     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the key bindings for the given break modifiers.
func DefaultKeyMap(breakMods session.Modifiers) KeyMap {
	newline := NewlineKeys(breakMods)
	return KeyMap{
		Newline: key.NewBinding(
			key.WithKeys(newline...),
			key.WithHelp(newlineHelp(newline), "new line"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Enter/C-s", "send"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("C-Home", "oldest"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("C-End", "latest"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q", "esc"),
			key.WithHelp("Esc/C-c", "quit"),
		),
	}
}

// NewlineKeys maps break modifiers to the chords a terminal can actually
// report. Terminals do not distinguish shift+enter from enter, so shift has
// no chord; ctrl+enter arrives as ctrl+j on most terminals.
func NewlineKeys(mods session.Modifiers) []string {
	var keys []string
	if mods.Has(session.ModAlt) {
		keys = append(keys, "alt+enter")
	}
	if mods.Has(session.ModCtrl) {
		keys = append(keys, "ctrl+j")
	}
	return keys
}

func newlineHelp(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "alt+enter":
			labels[i] = "M-Enter"
		case "ctrl+j":
			labels[i] = "C-j"
		default:
			labels[i] = k
		}
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns a slice of key bindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Newline, k.Help, k.Quit}
}

// FullHelp returns a slice of key bindings to show in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Newline},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.Quit},
	}
}
