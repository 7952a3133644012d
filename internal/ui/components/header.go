// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/planchat/internal/ui/styles"
	"github.com/jeranaias/planchat/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// HeaderHeight is the number of rows the header occupies (title + border).
const HeaderHeight = 2

// Header is the title bar above the timeline.
type Header struct {
	Title string
	Width int
	theme *styles.Theme
}

// NewHeader creates a Header with the given title.
func NewHeader(title string, theme *styles.Theme) *Header {
	return &Header{
		Title: title,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTitle replaces the title text
func (h *Header) SetTitle(title string) {
	h.Title = title
}

// SetTheme swaps the theme after a config reload
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// View renders the centered, width-truncated title.
func (h *Header) View() string {
	width := h.Width
	if width < 10 {
		width = 10
	}
	// Padding(0, 2) on the header style
	inner := width - 4

	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, inner))
	return h.theme.Header.Width(width).Render(title)
}
