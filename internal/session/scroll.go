// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session wires render-surface events to the conversation core.
package session

import (
	"errors"
	"fmt"

	"github.com/jeranaias/planchat/internal/model"
)

// ErrAnchorNotMounted is returned by anchors that cannot scroll yet, for
// example before the surface has been sized.
var ErrAnchorNotMounted = errors.New("scroll anchor not mounted")

// ScrollRequest asks the render surface to bring the latest message into
// view. Only the most recent request matters; Seq increases with every append.
type ScrollRequest struct {
	Seq    uint64
	Target model.MessageID
	Smooth bool
}

// ScrollAnchor performs a scroll on the render surface.
type ScrollAnchor interface {
	ScrollToLatest(req ScrollRequest) error
}

// ScrollAnchorFunc adapts a function to ScrollAnchor.
type ScrollAnchorFunc func(req ScrollRequest) error

// ScrollToLatest calls f(req).
func (f ScrollAnchorFunc) ScrollToLatest(req ScrollRequest) error {
	return f(req)
}

// PendingScroll returns the scroll request waiting for the next flush.
func (s *Session) PendingScroll() (ScrollRequest, bool) {
	if s.pending == nil {
		return ScrollRequest{}, false
	}
	return *s.pending, true
}

// FlushScroll performs the pending scroll request, if any, against anchor.
// Surfaces call it after they have rendered the change that caused the
// request. Anchor failures, including panics, are swallowed: the request is
// dropped and the timeline is unaffected. Returns true if the anchor scrolled.
func (s *Session) FlushScroll(anchor ScrollAnchor) (scrolled bool) {
	if s.pending == nil {
		return false
	}
	req := *s.pending
	s.pending = nil

	if anchor == nil {
		s.dropScroll(req, ErrAnchorNotMounted)
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			s.dropScroll(req, fmt.Errorf("anchor panic: %v", r))
			scrolled = false
		}
	}()

	if err := anchor.ScrollToLatest(req); err != nil {
		s.dropScroll(req, err)
		return false
	}
	return true
}

// requestScroll replaces any pending request with one targeting msg.
func (s *Session) requestScroll(msg model.Message) ScrollRequest {
	s.scrollSeq++
	req := ScrollRequest{
		Seq:    s.scrollSeq,
		Target: msg.ID,
		Smooth: s.smoothScroll,
	}
	s.pending = &req
	return req
}

// dropScroll records a swallowed scroll failure. Logging is sampled so a
// surface that is never mounted cannot flood the log.
func (s *Session) dropScroll(req ScrollRequest, err error) {
	s.scrollFailures++
	s.scrollLogSampler.Do(func() {
		s.logger.Debug().
			Err(err).
			Uint64("scroll_seq", req.Seq).
			Stringer("target", req.Target).
			Int("failures", s.scrollFailures).
			Msg("Scroll to latest dropped")
	})
}
