// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI pieces the planchat chat view is built from.

# Components

Header (header.go) - Centered title bar.
MessageBubble (message.go) - One committed message with its timestamp line.
RenderTimeline / EmptyState (message.go) - The whole message list.
InputBar (input.go) - Add button, multi-line text field, voice button and
send button. SendHit maps a mouse click to the send button.
Toast (toast.go) - One-line timed notice under the input bar.

Components take a *styles.Theme and render with View.

# Usage

	header := components.NewHeader(cfg.UI.Title, theme)
	header.SetWidth(width)
	view := header.View()
*/
package components
