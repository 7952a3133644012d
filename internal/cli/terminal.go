// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and surface selection for planchat.
//
// The full-screen surface needs a terminal on both stdin and stdout. Piped
// input or redirected output falls back to the line-mode surface.

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStderrTTY returns true if stderr is a terminal.
func IsStderrTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// =============================================================================
// SURFACE SELECTION
// =============================================================================

// Surface is the render surface a run drives.
type Surface int

const (
	// SurfaceTUI is the full-screen Bubble Tea interface
	SurfaceTUI Surface = iota
	// SurfaceLine is the line-by-line prompt
	SurfaceLine
)

// String returns the surface name used in logs.
func (s Surface) String() string {
	switch s {
	case SurfaceTUI:
		return "tui"
	case SurfaceLine:
		return "line"
	default:
		return "unknown"
	}
}

// ChooseSurface picks the TUI only when both ends are terminals and line mode
// was not requested.
func ChooseSurface(forcePlain, stdinTTY, stdoutTTY bool) Surface {
	if forcePlain || !stdinTTY || !stdoutTTY {
		return SurfaceLine
	}
	return SurfaceTUI
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if colored output should be used.
// Respects NO_COLOR and FORCE_COLOR, then falls back to TTY detection.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// GetColorProfile returns the termenv profile for command output.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
