// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the full-screen chat view of planchat.

The Model is a Bubble Tea model layered over a session.Session. Every key
press and click is translated into a session event; the model never edits
the conversation itself.

# Key Components

## Model (model.go)

  - Enter (and ctrl+j) go to Session.OnKeyDown. When the session suppresses
    the default action the text field never sees the key; otherwise the
    text field inserts a line break.
  - Other keys go to the text field, whose value is reported through
    Session.OnTextChange.
  - The send button (mouse click) and ctrl+s call Session.OnSendActivated.

## Scrolling (scroll.go)

An append leaves a pending scroll request in the session. The model answers
with a command whose message arrives after the new frame is drawn; only then
is the request flushed against the viewport anchor. Smooth requests animate
the offset on a harmonica spring.

## Config Reload (messages.go, model.go)

WatchConfig turns config file changes into ConfigReloadedMsg values that
update title, placeholder, theme, timestamp format, newline keys and smooth
scrolling without restarting. A toast under the input bar reports whether the
reload was applied.

# Usage

	s := session.New(session.Options{SmoothScroll: cfg.UI.SmoothScroll})
	m := chat.New(chat.Options{Session: s, Config: cfg})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
*/
package chat
