// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// SCROLL ANIMATION
// =============================================================================

// SpringConfig holds the parameters of a damped spring animation.
type SpringConfig struct {
	FPS       int
	Frequency float64 // angular frequency; higher settles faster
	Damping   float64 // 1 is critically damped, <1 overshoots
}

// ScrollSpring drives smooth scroll-to-latest. Critically damped, so the
// offset never overshoots the bottom of the list.
var ScrollSpring = SpringConfig{
	FPS:       60,
	Frequency: 8.0,
	Damping:   1.0,
}

// FrameDuration returns the duration of one animation frame.
func (s SpringConfig) FrameDuration() time.Duration {
	if s.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.FPS)
}

// MaxFrames bounds an animation so a spring that never settles still ends.
func (s SpringConfig) MaxFrames() int {
	fps := s.FPS
	if fps <= 0 {
		fps = 60
	}
	return fps // one second
}
