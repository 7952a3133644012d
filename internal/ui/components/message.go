// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/planchat/internal/model"
	"github.com/jeranaias/planchat/internal/ui/styles"
	"github.com/jeranaias/planchat/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// bubbleChrome is the horizontal space taken by the bubble's border and padding.
const bubbleChrome = 4

// MessageBubble renders one committed message: the text verbatim inside a
// rounded bubble with its timestamp on a small line beneath, right-aligned.
type MessageBubble struct {
	Message model.Message
	Width   int
	theme   *styles.Theme
}

// NewMessageBubble creates a new MessageBubble
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message: msg,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth sets the available width
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble
func (b *MessageBubble) View() string {
	width := b.Width
	if width < 20 {
		width = 20
	}

	// Bubbles take at most three quarters of the row.
	maxContent := width*3/4 - bubbleChrome
	if maxContent < 8 {
		maxContent = 8
	}

	lines := util.WrapWidth(expandTabs(b.Message.Text), maxContent)
	bubble := b.theme.Bubble.Render(strings.Join(lines, "\n"))
	stamp := b.theme.BubbleTime.Render(b.Message.Timestamp)

	block := lipgloss.JoinVertical(lipgloss.Right, bubble, stamp)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
}

// expandTabs replaces tabs so width measurement matches what is drawn.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// =============================================================================
// TIMELINE
// =============================================================================

// RenderTimeline renders every message in order, separated by a blank line.
// An empty timeline renders the empty-state hint.
func RenderTimeline(messages []model.Message, width int, hint string, theme *styles.Theme) string {
	if len(messages) == 0 {
		return EmptyState(hint, width, theme)
	}

	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		bubble := NewMessageBubble(msg, theme)
		bubble.SetWidth(width)
		parts = append(parts, bubble.View())
	}
	return strings.Join(parts, "\n\n")
}

// EmptyState renders the hint shown before the first message.
func EmptyState(hint string, width int, theme *styles.Theme) string {
	if width < 1 {
		width = 1
	}
	return theme.EmptyState.Width(width).Render(util.TruncateWidth(hint, width))
}
