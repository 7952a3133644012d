// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package plain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/planchat/internal/model"
	"github.com/jeranaias/planchat/internal/session"
)

// Prompts shown before each line.
const (
	PromptMain         = "> "
	PromptContinuation = ". "
)

// continuation marks a line that continues on the next one.
const continuation = `\`

// =============================================================================
// PROMPTER
// =============================================================================

// Prompter reads edited lines from the terminal. *liner.State implements it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	AppendHistory(item string)
	Close() error
}

// NewLinerPrompter returns a liner-backed prompter with readline-style
// editing. Ctrl+C aborts the prompt instead of killing the process.
func NewLinerPrompter() *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return line
}

// =============================================================================
// REPL
// =============================================================================

// REPL drives a session from line input and prints committed messages.
type REPL struct {
	session    *session.Session
	prompter   Prompter
	out        io.Writer
	continuing bool
}

// NewREPL creates a REPL over s.
func NewREPL(s *session.Session, p Prompter, out io.Writer) *REPL {
	return &REPL{
		session:  s,
		prompter: p,
		out:      out,
	}
}

// Close releases the terminal.
func (r *REPL) Close() error {
	return r.prompter.Close()
}

// Run reads lines until EOF, Ctrl+C or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := r.readLine()
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.out)
			r.printSummary()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		r.HandleLine(line)
	}
}

// readLine prompts for the next line, offering a kept blank draft for editing.
func (r *REPL) readLine() (string, error) {
	if r.continuing {
		return r.prompter.Prompt(PromptContinuation)
	}
	// The line editor holds a single line, so a multi-line draft is not offered.
	if draft := r.session.DraftText(); draft != "" && !strings.ContainsAny(draft, "\r\n") {
		return r.prompter.PromptWithSuggestion(PromptMain, draft, -1)
	}
	return r.prompter.Prompt(PromptMain)
}

// HandleLine applies one entered line to the session: the line becomes (or
// extends) the draft, then Enter is pressed. Returns the committed message,
// if any.
func (r *REPL) HandleLine(line string) (model.Message, bool) {
	text := line
	if r.continuing {
		text = r.session.DraftText() + line
	}

	if strings.HasSuffix(text, continuation) {
		r.session.OnTextChange(strings.TrimSuffix(text, continuation))
		if !r.session.OnKeyDown(session.KeyEvent{Key: session.KeyEnter, Modifiers: r.session.BreakModifiers()}) {
			// Default action of a modified Enter: a line break in the draft.
			r.session.OnTextChange(r.session.DraftText() + "\n")
		}
		r.continuing = true
		return model.Message{}, false
	}
	r.continuing = false

	before := r.session.MessageCount()
	r.session.OnTextChange(text)
	r.session.OnKeyDown(session.KeyEvent{Key: session.KeyEnter})
	if r.session.MessageCount() == before {
		return model.Message{}, false
	}

	msg, _ := r.session.LastMessage()
	r.prompter.AppendHistory(msg.Text)
	r.printMessage(msg)
	return msg, true
}

// printMessage writes the message and then flushes the scroll request.
// The terminal always shows the newest output, so the anchor has nothing
// left to do.
func (r *REPL) printMessage(msg model.Message) {
	lines := strings.Split(msg.Text, "\n")
	fmt.Fprintf(r.out, "  [%s] %s\n", msg.Timestamp, lines[0])
	indent := strings.Repeat(" ", len(msg.Timestamp)+5)
	for _, l := range lines[1:] {
		fmt.Fprintf(r.out, "%s%s\n", indent, l)
	}

	r.session.FlushScroll(session.ScrollAnchorFunc(func(session.ScrollRequest) error {
		return nil
	}))
}

func (r *REPL) printSummary() {
	n := r.session.MessageCount()
	switch n {
	case 0:
		fmt.Fprintln(r.out, "No messages.")
	case 1:
		fmt.Fprintln(r.out, "1 message.")
	default:
		fmt.Fprintf(r.out, "%d messages.\n", n)
	}
}
