// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation core: messages, the append-only
// timeline, and the draft composer.
//
// # Key Types
//
//   - Message: Immutable committed message (ID, text, display timestamp)
//   - Timeline: Append-only, insertion-ordered list of messages
//   - Composer: Owns the draft and turns it into a Message on submit
//   - IDSource: Allocates message identities (MonotonicIDs in production)
//
// # Usage
//
//	tl := model.NewTimeline()
//	c := model.NewComposer(model.NewMonotonicIDs(clock.System{}), clock.System{}, formatter)
//
//	c.UpdateDraft("Hello")
//	if msg, ok := c.TrySubmit(); ok {
//	    _ = tl.Append(msg)
//	}
//
// Blank drafts (empty after trimming white space) are never submitted; the
// call is a silent no-op and the draft is left as typed.
package model
