// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package plain provides the line-mode surface of planchat, used when the
// terminal cannot host the full-screen UI or when --plain is given.
//
// Each entered line becomes the draft and Enter commits it. A line ending in
// a backslash continues the draft on the next line. A blank line is not
// committed; it stays as the draft and is offered again at the next prompt.
// Ctrl+D or Ctrl+C ends the session.
//
// # Usage
//
//	repl := plain.NewREPL(s, plain.NewLinerPrompter(), os.Stdout)
//	defer repl.Close()
//	err := repl.Run(ctx)
package plain
