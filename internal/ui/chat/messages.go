// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/planchat/internal/config"
)

// =============================================================================
// SCROLL MESSAGES
// =============================================================================

// scrollToLatestMsg flushes the session's pending scroll request. It is
// delivered by a command, so it arrives after the frame showing the new
// message has been rendered.
type scrollToLatestMsg struct {
	seq uint64
}

// scrollToLatestCmd schedules a flush of scroll request seq.
func scrollToLatestCmd(seq uint64) tea.Cmd {
	return func() tea.Msg {
		return scrollToLatestMsg{seq: seq}
	}
}

// scrollFrameMsg advances a smooth scroll animation by one frame.
type scrollFrameMsg struct {
	id uint64
}

// scrollFrameCmd schedules the next animation frame.
func scrollFrameCmd(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return scrollFrameMsg{id: id}
	})
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a config that changed on disk. Err is set when the
// file could not be loaded; the current settings stay in effect.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
