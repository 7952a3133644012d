// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders header, timeline, input bar, toast and help line top to
// bottom.
// Heights come from layout(), which measures the same pieces.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	parts := []string{
		m.header.View(),
		m.viewport.View(),
		m.input.View(),
	}
	if m.toast != nil {
		parts = append(parts, m.toast.View(m.width, m.theme))
	}
	if helpLine := m.helpView(); helpLine != "" {
		parts = append(parts, helpLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// helpView renders the key help. The short line follows the show_help
// setting; the full view is toggled by the help key and always shown.
func (m Model) helpView() string {
	if !m.showHelp && !m.cfg.UI.ShowHelp {
		return ""
	}
	h := m.help
	h.ShowAll = m.showHelp
	return lipgloss.NewStyle().PaddingLeft(1).Render(h.View(m.keyMap))
}
