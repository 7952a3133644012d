// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session wires render-surface events to the conversation core.
//
// A Session owns exactly one Composer and one Timeline for the lifetime of a
// running program. Render surfaces (the terminal UI, line mode) report user
// events and read state back; they never touch the composer or timeline
// directly.
//
// # Key Types
//
//   - Session: Event entry points, state accessors, change subscription
//   - KeyEvent: Key plus held modifiers, as reported by a surface
//   - ScrollRequest: Pending "scroll to latest" issued after every append
//   - ScrollAnchor: Surface-side target that performs the scroll
//
// # Usage
//
//	s := session.New(session.Options{Logger: log.Logger})
//	s.OnTextChange("Hello")
//	if s.OnKeyDown(session.KeyEvent{Key: session.KeyEnter}) {
//	    // default action (newline insertion) suppressed
//	}
//	// ...after the surface has rendered:
//	s.FlushScroll(anchor)
//
// # Submit Triggers
//
// OnSendActivated and OnKeyDown(enter) without a line-break modifier run the
// same sequence: validate draft, append message, clear draft, request scroll.
// A blank draft makes the sequence a silent no-op.
package session
