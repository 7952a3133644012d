// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects which side of the adaptive palette is used.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode converts a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeDark, ModeLight:
		return Mode(s), nil
	case "":
		return ModeAuto, nil
	}
	return ModeAuto, fmt.Errorf("unknown theme %q", s)
}

// Theme holds all the styled components for the application.
// Styles are bound to the theme's renderer, so a forced dark or light mode
// never leaks into other renderers.
type Theme struct {
	// Terminal capabilities
	Mode         Mode
	IsDark       bool
	ColorProfile termenv.Profile

	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// TIMELINE STYLES
	// ==========================================================================

	Bubble     lipgloss.Style
	BubbleTime lipgloss.Style
	EmptyState lipgloss.Style

	// ==========================================================================
	// INPUT BAR STYLES
	// ==========================================================================

	InputBar         lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Button           lipgloss.Style
	SendButton       lipgloss.Style
	SendButtonIdle   lipgloss.Style

	// ==========================================================================
	// HELP LINE STYLES
	// ==========================================================================

	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// TOAST STYLES
	// ==========================================================================

	ToastStatus lipgloss.Style
	ToastError  lipgloss.Style
}

// NewTheme creates a theme for stdout with the given mode.
func NewTheme(mode Mode) *Theme {
	return NewThemeFor(os.Stdout, mode)
}

// NewThemeFor creates a theme rendering to w. ModeAuto queries the terminal
// background; the other modes force it.
func NewThemeFor(w io.Writer, mode Mode) *Theme {
	r := lipgloss.NewRenderer(w)

	isDark := r.HasDarkBackground()
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
	}
	r.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the renderer the theme's styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	r := t.renderer

	// Header
	t.Header = r.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = r.NewStyle().
		Bold(true).
		Foreground(Accent)

	// Timeline
	t.Bubble = r.NewStyle().
		Foreground(BubbleFg).
		Background(BubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BubbleBorder).
		Padding(0, 1)

	t.BubbleTime = r.NewStyle().
		Foreground(TextMuted).
		Faint(true)

	t.EmptyState = r.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Align(lipgloss.Center)

	// Input bar
	t.InputBar = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputText = r.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = r.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Button = r.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SendButton = r.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Accent).
		Padding(0, 1)

	t.SendButtonIdle = r.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1)

	// Help line
	t.ShortcutKey = r.NewStyle().
		Foreground(Accent).
		Bold(true)

	t.ShortcutDesc = r.NewStyle().
		Foreground(TextMuted)

	// Toasts
	t.ToastStatus = r.NewStyle().
		Foreground(Success).
		PaddingLeft(1)

	t.ToastError = r.NewStyle().
		Foreground(Danger).
		Bold(true).
		PaddingLeft(1)
}
