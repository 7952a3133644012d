// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the planchat TUI.

All colors use Lip Gloss AdaptiveColor. A Theme owns its own renderer, so the
light or dark side of the palette can be forced from config without touching
the global lipgloss state.

# Color System (colors.go)

  - Accent - Header title, send button, key hints
  - Surface, SurfaceDim, Overlay - Backgrounds and borders
  - TextPrimary, TextSecondary, TextMuted, TextInverse - Text
  - BubbleBg, BubbleFg, BubbleBorder - Message bubbles

# Theme (theme.go)

	theme := styles.NewTheme(styles.ModeAuto)
	title := theme.HeaderTitle.Render("今天有什么计划?")

# Animation (animations.go)

ScrollSpring holds the spring parameters used by smooth scroll-to-latest.
*/
package styles
