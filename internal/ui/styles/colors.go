// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// All colors use Lip Gloss AdaptiveColor so one palette serves light and
// dark terminals. The theme's renderer decides which side applies.

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Accent - Send button, header title, focus ring
var Accent = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// AccentDeep - Pressed/hover state of the send button
var AccentDeep = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Header and input bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, inactive buttons
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps, placeholder
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on the accent background
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

var BubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"}
var BubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var BubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// =============================================================================
// STATUS COLORS
// =============================================================================

// Success - Confirmation toasts
var Success = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Danger - Error toasts
var Danger = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}
