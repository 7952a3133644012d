// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements one-line toasts shown under the input bar. A toast
// never takes focus and is dismissed by a timer.

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/planchat/internal/ui/styles"
	"github.com/jeranaias/planchat/internal/util"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus confirms something happened
	ToastKindStatus ToastKind = iota
	// ToastKindError reports a failure the user should read
	ToastKindError
)

// StatusToastDuration is the auto-dismiss duration for status toasts.
const StatusToastDuration = 3 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts (longer to read).
const ErrorToastDuration = 8 * time.Second

// ToastHeight is the number of rows a visible toast occupies.
const ToastHeight = 1

// Toast is a transient one-line notification.
type Toast struct {
	ID       int
	Message  string
	Kind     ToastKind
	Duration time.Duration
}

// NewStatusToast creates a status toast with the default duration.
func NewStatusToast(id int, message string) Toast {
	return Toast{ID: id, Message: message, Kind: ToastKindStatus, Duration: StatusToastDuration}
}

// NewErrorToast creates an error toast with the longer error duration.
func NewErrorToast(id int, message string) Toast {
	return Toast{ID: id, Message: message, Kind: ToastKindError, Duration: ErrorToastDuration}
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastExpiredMsg is delivered when a toast's duration has elapsed.
type ToastExpiredMsg struct {
	ID int
}

// ExpireCmd schedules the toast's dismissal.
func (t Toast) ExpireCmd() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

// View renders the toast as a single line no wider than width. Line breaks in
// the message are folded into spaces.
func (t Toast) View(width int, theme *styles.Theme) string {
	style, icon := theme.ToastStatus, "✓"
	if t.Kind == ToastKindError {
		style, icon = theme.ToastError, "✗"
	}

	text := icon + " " + strings.Join(strings.Fields(t.Message), " ")
	avail := width - style.GetHorizontalFrameSize()
	if avail < 1 {
		avail = 1
	}
	return style.Render(util.TruncateWidth(text, avail))
}
