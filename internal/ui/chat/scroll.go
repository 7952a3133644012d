// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/jeranaias/planchat/internal/session"
	"github.com/jeranaias/planchat/internal/ui/styles"
)

// =============================================================================
// VIEWPORT ANCHOR
// =============================================================================

// viewportAnchor scrolls the message viewport for the session. It refuses
// to scroll before the first WindowSizeMsg, when the viewport has no
// geometry.
type viewportAnchor struct {
	vp       *viewport.Model
	mounted  bool
	animator *scrollAnimator
	cmd      tea.Cmd
}

// ScrollToLatest implements session.ScrollAnchor.
func (a *viewportAnchor) ScrollToLatest(req session.ScrollRequest) error {
	if !a.mounted || a.vp.Height <= 0 {
		return session.ErrAnchorNotMounted
	}
	if req.Smooth {
		a.cmd = a.animator.start(a.vp)
		return nil
	}
	a.animator.stop()
	a.vp.GotoBottom()
	return nil
}

// =============================================================================
// SMOOTH SCROLL ANIMATION
// =============================================================================

// scrollAnimator moves the viewport offset toward the bottom on a damped
// spring, one tea.Tick per frame.
type scrollAnimator struct {
	config styles.SpringConfig
	spring harmonica.Spring

	id     uint64 // increments on start and stop; stale frames are ignored
	active bool
	pos    float64
	vel    float64
	frames int
}

func newScrollAnimator(cfg styles.SpringConfig) scrollAnimator {
	return scrollAnimator{
		config: cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
	}
}

// start begins (or retargets) an animation from the current offset.
func (s *scrollAnimator) start(vp *viewport.Model) tea.Cmd {
	if bottomOffset(vp) <= vp.YOffset {
		s.stop()
		return nil
	}
	if !s.active {
		s.pos = float64(vp.YOffset)
		s.vel = 0
	}
	s.id++
	s.active = true
	s.frames = 0
	return scrollFrameCmd(s.id, s.config.FrameDuration())
}

// stop cancels a running animation.
func (s *scrollAnimator) stop() {
	if s.active {
		s.id++
	}
	s.active = false
}

// frame advances the animation. The target is re-read every frame so
// content appended mid-animation is still reached.
func (s *scrollAnimator) frame(msg scrollFrameMsg, vp *viewport.Model) tea.Cmd {
	if !s.active || msg.id != s.id {
		return nil
	}

	target := float64(bottomOffset(vp))
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	s.frames++

	settled := math.Abs(target-s.pos) < 0.5 && math.Abs(s.vel) < 0.5
	if settled || s.frames >= s.config.MaxFrames() {
		s.active = false
		vp.GotoBottom()
		return nil
	}

	vp.SetYOffset(int(math.Round(s.pos)))
	return scrollFrameCmd(s.id, s.config.FrameDuration())
}

// bottomOffset is the YOffset that shows the last line of content.
func bottomOffset(vp *viewport.Model) int {
	off := vp.TotalLineCount() - vp.Height
	if off < 0 {
		return 0
	}
	return off
}
