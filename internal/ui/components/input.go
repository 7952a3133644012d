// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/planchat/internal/ui/styles"
	"github.com/jeranaias/planchat/internal/util"
)

// =============================================================================
// INPUT BAR COMPONENT
// =============================================================================

// Button labels. The add and voice buttons are drawn but do nothing.
const (
	AddLabel   = "+"
	VoiceLabel = "Mic"
	SendLabel  = "Send"
)

// MaxInputLines caps how tall the text field grows before it scrolls.
const MaxInputLines = 5

// inputGap is the space between the bar's elements.
const inputGap = 1

// InputBar is the composer row: [+] text field [Mic] [Send].
type InputBar struct {
	input       textarea.Model
	width       int
	sendEnabled bool
	theme       *styles.Theme
}

// NewInputBar creates an InputBar. newlineKeys are the chords the text field
// treats as a line break; Enter itself is never handled by the text field.
func NewInputBar(placeholder string, newlineKeys []string, theme *styles.Theme) *InputBar {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0 // unlimited
	ta.MaxHeight = 0
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(newlineKeys...))

	bar := &InputBar{
		input: ta,
		width: 80,
		theme: theme,
	}
	bar.applyTheme()
	bar.layout()
	return bar
}

func (i *InputBar) applyTheme() {
	focused, blurred := textarea.DefaultStyles()
	focused.CursorLine = lipgloss.NewStyle()
	focused.Text = i.theme.InputText
	focused.Placeholder = i.theme.InputPlaceholder
	blurred.Text = i.theme.InputText
	blurred.Placeholder = i.theme.InputPlaceholder
	i.input.FocusedStyle = focused
	i.input.BlurredStyle = blurred
}

// SetTheme swaps the theme after a config reload
func (i *InputBar) SetTheme(theme *styles.Theme) {
	i.theme = theme
	i.applyTheme()
}

// Focus focuses the text field
func (i *InputBar) Focus() tea.Cmd {
	return i.input.Focus()
}

// SetWidth sets the bar width and resizes the text field to fill the gap
// between the buttons.
func (i *InputBar) SetWidth(width int) {
	i.width = width
	i.layout()
}

// SetPlaceholder sets the placeholder text
func (i *InputBar) SetPlaceholder(placeholder string) {
	i.input.Placeholder = placeholder
}

// SetNewlineKeys replaces the line break chords
func (i *InputBar) SetNewlineKeys(keys []string) {
	i.input.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(keys...))
}

// SetSendEnabled highlights the send button when a commit would succeed.
func (i *InputBar) SetSendEnabled(enabled bool) {
	i.sendEnabled = enabled
}

// Value returns the current text
func (i *InputBar) Value() string {
	return i.input.Value()
}

// SetValue replaces the text
func (i *InputBar) SetValue(value string) {
	if i.input.Value() == value {
		return
	}
	i.input.SetValue(value)
	i.layout()
}

// Update forwards msg to the text field
func (i *InputBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	i.layout()
	return cmd
}

// Height returns the rows the bar occupies including its top border.
func (i *InputBar) Height() int {
	return i.input.Height() + 1
}

// layout sizes the text field from the bar width and its line count.
func (i *InputBar) layout() {
	fieldWidth := i.width - 2 - // bar padding
		buttonWidth(AddLabel) - buttonWidth(VoiceLabel) - buttonWidth(SendLabel) -
		3*inputGap
	if fieldWidth < 4 {
		fieldWidth = 4
	}
	i.input.SetWidth(fieldWidth)

	lines := i.input.LineCount()
	if lines < 1 {
		lines = 1
	}
	if lines > MaxInputLines {
		lines = MaxInputLines
	}
	i.input.SetHeight(lines)
}

// SendHit reports whether a click at column x, row y (relative to the top
// of the bar) lands on the send button.
func (i *InputBar) SendHit(x, y int) bool {
	if y < 1 || y >= i.Height() {
		return false
	}
	start := i.sendStart()
	return x >= start && x < start+buttonWidth(SendLabel)
}

// sendStart is the column where the send button begins.
func (i *InputBar) sendStart() int {
	return 1 + // bar padding
		buttonWidth(AddLabel) + inputGap +
		lipgloss.Width(i.input.View()) + inputGap +
		buttonWidth(VoiceLabel) + inputGap
}

// View renders the bar
func (i *InputBar) View() string {
	gap := strings.Repeat(" ", inputGap)

	send := i.theme.SendButtonIdle
	if i.sendEnabled {
		send = i.theme.SendButton
	}

	row := lipgloss.JoinHorizontal(lipgloss.Bottom,
		i.theme.Button.Render(AddLabel), gap,
		i.input.View(), gap,
		i.theme.Button.Render(VoiceLabel), gap,
		send.Render(SendLabel),
	)
	return i.theme.InputBar.Width(i.width).Render(row)
}

// buttonWidth is a label's width plus the button's horizontal padding.
func buttonWidth(label string) int {
	return util.StringWidth(label) + 2
}
