// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/planchat/internal/clock"
	"github.com/jeranaias/planchat/internal/model"
)

// recorder collects changes and scroll calls in the order they happen.
type recorder struct {
	changes []Change
	scrolls []ScrollRequest
}

func (r *recorder) kinds() []ChangeKind {
	out := make([]ChangeKind, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Kind)
	}
	return out
}

func (r *recorder) anchor() ScrollAnchor {
	return ScrollAnchorFunc(func(req ScrollRequest) error {
		r.scrolls = append(r.scrolls, req)
		return nil
	})
}

func newTestSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	at := time.Date(2025, 6, 1, 14, 7, 0, 0, time.UTC)
	s := New(Options{
		IDs:          model.NewMonotonicIDs(clock.Fixed(at)),
		Clock:        clock.Fixed(at),
		Formatter:    clock.MustFormatter("zh-CN", "").In(time.UTC),
		SmoothScroll: true,
	})
	rec := &recorder{}
	s.Subscribe(func(c Change) { rec.changes = append(rec.changes, c) })
	return s, rec
}

// =============================================================================
// SUBMITTING
// =============================================================================

func TestOnKeyDown_EnterCommitsDraft(t *testing.T) {
	s, _ := newTestSession(t)

	s.OnTextChange("Hello")
	suppressed := s.OnKeyDown(KeyEvent{Key: KeyEnter})

	assert.True(t, suppressed, "default action must be suppressed")
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello", msgs[0].Text)
	assert.Equal(t, "14:07", msgs[0].Timestamp)
	assert.Equal(t, "", s.DraftText())
	assert.Equal(t, model.StateIdle, s.State())
}

func TestOnSendActivated_WhitespaceDraftIsNoOp(t *testing.T) {
	s, rec := newTestSession(t)

	s.OnTextChange("   ")
	rec.changes = nil

	msg, ok := s.OnSendActivated()

	assert.False(t, ok)
	assert.Equal(t, model.Message{}, msg)
	assert.Empty(t, s.Messages())
	assert.Equal(t, "   ", s.DraftText())
	assert.Empty(t, rec.changes, "no-op submit publishes nothing")
	_, pending := s.PendingScroll()
	assert.False(t, pending)
}

func TestOnKeyDown_BreakModifierNeverCommits(t *testing.T) {
	for _, mods := range []Modifiers{ModShift, ModAlt, ModShift | ModAlt, ModShift | ModCtrl} {
		t.Run(mods.String(), func(t *testing.T) {
			s, _ := newTestSession(t)
			s.OnTextChange("A")

			suppressed := s.OnKeyDown(KeyEvent{Key: KeyEnter, Modifiers: mods})

			assert.False(t, suppressed, "line break is left to the input field")
			assert.Empty(t, s.Messages())
			assert.Equal(t, "A", s.DraftText(), "no newline is added by the session")
		})
	}
}

func TestSubmit_TwoCommitsInOrderScrollEach(t *testing.T) {
	s, rec := newTestSession(t)

	s.OnTextChange("first")
	s.OnKeyDown(KeyEvent{Key: KeyEnter})
	require.True(t, s.FlushScroll(rec.anchor()))

	s.OnTextChange("second")
	_, ok := s.OnSendActivated()
	require.True(t, ok)
	require.True(t, s.FlushScroll(rec.anchor()))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)

	require.Len(t, rec.scrolls, 2)
	assert.Equal(t, msgs[0].ID, rec.scrolls[0].Target)
	assert.Equal(t, msgs[1].ID, rec.scrolls[1].Target)
	assert.Less(t, rec.scrolls[0].Seq, rec.scrolls[1].Seq)
	assert.True(t, rec.scrolls[1].Smooth)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func TestOnKeyDown_BlankCommitStillSuppressed(t *testing.T) {
	s, _ := newTestSession(t)
	s.OnTextChange(" \t")

	assert.True(t, s.OnKeyDown(KeyEvent{Key: KeyEnter}))
	assert.Empty(t, s.Messages())
	assert.Equal(t, " \t", s.DraftText())
}

func TestOnKeyDown_OtherKeysIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	s.OnTextChange("draft")

	assert.False(t, s.OnKeyDown(KeyEvent{Key: "a"}))
	assert.False(t, s.OnKeyDown(KeyEvent{Key: "tab", Modifiers: ModShift}))
	assert.Equal(t, "draft", s.DraftText())
	assert.Empty(t, s.Messages())
}

func TestOnKeyDown_CtrlEnterCommits(t *testing.T) {
	s, _ := newTestSession(t)
	s.OnTextChange("ctrl")

	assert.True(t, s.OnKeyDown(KeyEvent{Key: KeyEnter, Modifiers: ModCtrl}))
	assert.Len(t, s.Messages(), 1)
}

func TestSetBreakModifiers(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetBreakModifiers(ModAlt)
	s.OnTextChange("x")

	// Shift is no longer a break modifier.
	assert.True(t, s.OnKeyDown(KeyEvent{Key: KeyEnter, Modifiers: ModShift}))
	assert.Len(t, s.Messages(), 1)

	s.SetBreakModifiers(0)
	assert.Equal(t, DefaultBreakModifiers, s.BreakModifiers())
}

func TestParseModifier(t *testing.T) {
	assert.Equal(t, ModShift, ParseModifier("Shift"))
	assert.Equal(t, ModAlt, ParseModifier("alt"))
	assert.Equal(t, ModAlt, ParseModifier("option"))
	assert.Equal(t, ModCtrl, ParseModifier(" ctrl "))
	assert.Equal(t, Modifiers(0), ParseModifier("hyper"))
	assert.Equal(t, "shift+alt", (ModShift | ModAlt).String())
	assert.Equal(t, ModAlt|ModCtrl, ParseModifiers([]string{"meta", "control", "hyper"}))
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestProperty_NonBlankDraftsCommitVerbatim(t *testing.T) {
	drafts := []string{"a", " a", "a ", "  spaced out  ", "multi\nline", "\u3000x\u3000", "emoji 🎉"}

	for _, d := range drafts {
		s, _ := newTestSession(t)
		s.OnTextChange(d)
		_, ok := s.OnSendActivated()
		require.True(t, ok, "draft %q", d)

		msgs := s.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, d, msgs[0].Text)
		assert.Equal(t, "", s.DraftText())
	}
}

func TestProperty_BlankDraftsAppendNothing(t *testing.T) {
	for _, d := range []string{"", " ", "  ", "\n", "\t \r\n", "\u00a0"} {
		s, _ := newTestSession(t)
		s.OnTextChange(d)

		s.OnKeyDown(KeyEvent{Key: KeyEnter})
		s.OnSendActivated()

		assert.Empty(t, s.Messages(), "draft %q", d)
		assert.Equal(t, d, s.DraftText())
	}
}

func TestProperty_AppendOnlyAndUniqueIDs(t *testing.T) {
	s, _ := newTestSession(t)

	var snapshots [][]model.Message
	for i := 0; i < 50; i++ {
		s.OnTextChange(string(rune('a' + i%26)))
		s.OnKeyDown(KeyEvent{Key: KeyEnter})
		snapshots = append(snapshots, s.Messages())
	}

	final := s.Messages()
	require.Len(t, final, 50)
	for i, snap := range snapshots {
		assert.Equal(t, snap, final[:i+1], "prefix %d changed", i)
	}

	seen := make(map[model.MessageID]bool)
	for _, m := range final {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

// =============================================================================
// CHANGE NOTIFICATIONS
// =============================================================================

func TestSubscribe_ChangeOrder(t *testing.T) {
	s, rec := newTestSession(t)

	s.OnTextChange("hi")
	s.OnKeyDown(KeyEvent{Key: KeyEnter})

	assert.Equal(t, []ChangeKind{ChangeDraft, ChangeDraft, ChangeAppended, ChangeScrollRequested}, rec.kinds())
	assert.Equal(t, "hi", rec.changes[0].Draft)
	assert.Equal(t, "", rec.changes[1].Draft)
	assert.Equal(t, "hi", rec.changes[2].Message.Text)
	assert.Equal(t, rec.changes[2].Message.ID, rec.changes[3].Scroll.Target)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s, _ := newTestSession(t)
	var n int
	unsubscribe := s.Subscribe(func(Change) { n++ })

	s.OnTextChange("a")
	unsubscribe()
	unsubscribe()
	s.OnTextChange("b")

	assert.Equal(t, 1, n)
}

// =============================================================================
// SCROLL REQUESTS
// =============================================================================

func TestFlushScroll_OnlyLatestMatters(t *testing.T) {
	s, rec := newTestSession(t)

	for _, text := range []string{"one", "two", "three"} {
		s.OnTextChange(text)
		s.OnSendActivated()
	}

	pending, ok := s.PendingScroll()
	require.True(t, ok)
	assert.Equal(t, uint64(3), pending.Seq)

	assert.True(t, s.FlushScroll(rec.anchor()))
	assert.False(t, s.FlushScroll(rec.anchor()), "superseded requests are no-ops")

	require.Len(t, rec.scrolls, 1)
	assert.Equal(t, s.Messages()[2].ID, rec.scrolls[0].Target)
}

func TestFlushScroll_NothingPending(t *testing.T) {
	s, rec := newTestSession(t)
	assert.False(t, s.FlushScroll(rec.anchor()))
	assert.Empty(t, rec.scrolls)
}

func TestFlushScroll_FailuresAreSwallowed(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := New(Options{Logger: &logger})

	anchors := map[string]ScrollAnchor{
		"not mounted": ScrollAnchorFunc(func(ScrollRequest) error { return ErrAnchorNotMounted }),
		"other error": ScrollAnchorFunc(func(ScrollRequest) error { return errors.New("boom") }),
		"panic":       ScrollAnchorFunc(func(ScrollRequest) error { panic("anchor gone") }),
		"nil anchor":  nil,
	}

	for name, anchor := range anchors {
		t.Run(name, func(t *testing.T) {
			s.OnTextChange(name)
			_, ok := s.OnSendActivated()
			require.True(t, ok)

			var scrolled bool
			require.NotPanics(t, func() { scrolled = s.FlushScroll(anchor) })
			assert.False(t, scrolled)

			_, pending := s.PendingScroll()
			assert.False(t, pending, "failed request is dropped")
		})
	}

	assert.Len(t, s.Messages(), len(anchors), "timeline unaffected by scroll failures")
	assert.Contains(t, buf.String(), "Scroll to latest dropped")
}

func TestSetSmoothScroll(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetSmoothScroll(false)
	s.OnTextChange("x")
	s.OnSendActivated()

	req, ok := s.PendingScroll()
	require.True(t, ok)
	assert.False(t, req.Smooth)
}

// =============================================================================
// LOGGING
// =============================================================================

func TestLogging_NeverRecordsText(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := New(Options{Logger: &logger})

	s.OnTextChange("secret plans")
	s.OnSendActivated()
	s.OnTextChange("  ")
	s.OnSendActivated()

	out := buf.String()
	assert.Contains(t, out, "Message committed")
	assert.Contains(t, out, "Blank draft not submitted")
	assert.Contains(t, out, s.ID())
	assert.NotContains(t, out, "secret plans")
}
