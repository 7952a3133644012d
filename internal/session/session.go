// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session wires render-surface events to the conversation core.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jeranaias/planchat/internal/clock"
	"github.com/jeranaias/planchat/internal/model"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Session. The zero value is usable.
type Options struct {
	// IDs allocates message identities (default: MonotonicIDs over Clock)
	IDs model.IDSource

	// Clock is read once per committed message (default: system clock)
	Clock clock.Clock

	// Formatter renders message timestamps (default: zh-CN, hour:minute)
	Formatter *clock.Formatter

	// BreakModifiers turn the commit key into ordinary input when held
	// (default: DefaultBreakModifiers)
	BreakModifiers Modifiers

	// SmoothScroll is copied into every ScrollRequest
	SmoothScroll bool

	// Logger receives session events (default: disabled)
	Logger *zerolog.Logger
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns one Composer and one Timeline and turns render-surface events
// into operations on them. It is driven from a single event loop and takes no
// locks.
type Session struct {
	id        string
	startTime time.Time

	composer *model.Composer
	timeline *model.Timeline

	breakModifiers Modifiers
	smoothScroll   bool

	// Scroll-to-latest bookkeeping
	scrollSeq        uint64
	pending          *ScrollRequest
	scrollFailures   int
	scrollLogSampler rate.Sometimes

	listeners []sessionListener
	nextSubID int

	logger zerolog.Logger
}

type sessionListener struct {
	id int
	fn func(Change)
}

// New creates a session with an empty draft and an empty timeline.
func New(opts Options) *Session {
	c := opts.Clock
	if c == nil {
		c = clock.System{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = model.NewMonotonicIDs(c)
	}
	breakMods := opts.BreakModifiers
	if breakMods == 0 {
		breakMods = DefaultBreakModifiers
	}

	s := &Session{
		id:               uuid.NewString(),
		startTime:        c.Now(),
		composer:         model.NewComposer(ids, c, opts.Formatter),
		timeline:         model.NewTimeline(),
		breakModifiers:   breakMods,
		smoothScroll:     opts.SmoothScroll,
		scrollLogSampler: rate.Sometimes{First: 3, Interval: 30 * time.Second},
		logger:           zerolog.Nop(),
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With().Str("session_id", s.id).Logger()
	}

	s.composer.Subscribe(func(draft string) {
		s.publish(Change{Kind: ChangeDraft, Draft: draft})
	})
	s.timeline.Subscribe(func(msg model.Message) {
		s.publish(Change{Kind: ChangeAppended, Message: msg})
		req := s.requestScroll(msg)
		s.publish(Change{Kind: ChangeScrollRequested, Scroll: req})
	})

	s.logger.Info().
		Str("break_modifiers", breakMods.String()).
		Bool("smooth_scroll", opts.SmoothScroll).
		Msg("Session started")

	return s
}

// =============================================================================
// SURFACE EVENTS
// =============================================================================

// OnTextChange replaces the draft with the input field's current value.
func (s *Session) OnTextChange(text string) {
	s.composer.UpdateDraft(text)
}

// OnKeyDown handles a key-down on the input field and reports whether the
// surface must suppress the key's default action.
//
// The commit key without a break modifier runs the submit sequence and is
// always suppressed, even when the draft is blank. With a break modifier held
// the key is ordinary input and is left to the surface.
func (s *Session) OnKeyDown(ev KeyEvent) (suppressDefault bool) {
	if ev.Key != KeyEnter {
		return false
	}
	if ev.Modifiers.Has(s.breakModifiers) {
		return false
	}
	s.submit("commit_key")
	return true
}

// OnSendActivated runs the submit sequence for the send control.
func (s *Session) OnSendActivated() (model.Message, bool) {
	return s.submit("send_action")
}

// submit validates the draft and, when it is not blank, commits it.
func (s *Session) submit(trigger string) (model.Message, bool) {
	msg, ok := s.composer.TrySubmit()
	if !ok {
		s.logger.Debug().Str("trigger", trigger).Msg("Blank draft not submitted")
		return model.Message{}, false
	}

	if err := s.timeline.Append(msg); err != nil {
		s.logger.Error().Err(err).Stringer("message_id", msg.ID).Msg("Timeline rejected message")
		return model.Message{}, false
	}

	s.logger.Info().
		Stringer("message_id", msg.ID).
		Int("length", len(msg.Text)).
		Str("trigger", trigger).
		Int("timeline_len", s.timeline.Len()).
		Msg("Message committed")

	return msg, true
}

// =============================================================================
// STATE ACCESSORS
// =============================================================================

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns when the session was created.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// DraftText returns the current draft, verbatim.
func (s *Session) DraftText() string {
	return s.composer.Draft()
}

// Messages returns the committed messages in display order.
func (s *Session) Messages() []model.Message {
	return s.timeline.All()
}

// LastMessage returns the most recently committed message.
func (s *Session) LastMessage() (model.Message, bool) {
	return s.timeline.Last()
}

// MessageCount returns the number of committed messages.
func (s *Session) MessageCount() int {
	return s.timeline.Len()
}

// State returns the composer state.
func (s *Session) State() model.State {
	return s.composer.State()
}

// BreakModifiers returns the modifiers that request a line break.
func (s *Session) BreakModifiers() Modifiers {
	return s.breakModifiers
}

// =============================================================================
// RUNTIME SETTINGS
// =============================================================================

// SetFormatter changes the timestamp format of future messages.
func (s *Session) SetFormatter(f *clock.Formatter) {
	s.composer.SetFormatter(f)
}

// SetSmoothScroll changes whether future scroll requests animate.
func (s *Session) SetSmoothScroll(smooth bool) {
	s.smoothScroll = smooth
}

// SetBreakModifiers changes which modifiers turn the commit key into input.
// Zero restores the default.
func (s *Session) SetBreakModifiers(m Modifiers) {
	if m == 0 {
		m = DefaultBreakModifiers
	}
	s.breakModifiers = m
}

// =============================================================================
// SUBSCRIPTIONS
// =============================================================================

// Subscribe registers fn for every Change. ChangeAppended is always published
// before the ChangeScrollRequested it causes.
func (s *Session) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, sessionListener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish(c Change) {
	snapshot := make([]sessionListener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn(c)
	}
}
