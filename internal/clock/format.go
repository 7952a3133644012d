// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clock provides the time source and timestamp formatting.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// =============================================================================
// LAYOUTS
// =============================================================================

const (
	// Layout24h renders a two-digit 24-hour clock, e.g. "09:41", "21:05".
	Layout24h = "15:04"

	// Layout12h renders a two-digit 12-hour clock with a day period, e.g. "09:41 PM".
	Layout12h = "03:04 PM"

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "zh-CN"
)

// ErrInvalidLocale is returned when a locale is not a well-formed BCP 47 tag.
var ErrInvalidLocale = errors.New("invalid locale")

// twelveHourRegions conventionally display a 12-hour clock.
var twelveHourRegions = map[string]bool{
	"US": true,
	"CA": true,
	"AU": true,
	"NZ": true,
	"PH": true,
	"IN": true,
	"PK": true,
	"EG": true,
	"SA": true,
}

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter renders instants as hour:minute display strings for one locale.
type Formatter struct {
	tag      language.Tag
	layout   string
	location *time.Location
}

// NewFormatter builds a formatter for a BCP 47 locale.
// An empty layout selects the locale's conventional clock.
func NewFormatter(locale, layout string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
	}

	if layout == "" {
		layout = LayoutForTag(tag)
	}

	return &Formatter{
		tag:      tag,
		layout:   layout,
		location: time.Local,
	}, nil
}

// MustFormatter is like NewFormatter but panics on error.
// Intended for package-level defaults and tests.
func MustFormatter(locale, layout string) *Formatter {
	f, err := NewFormatter(locale, layout)
	if err != nil {
		panic(err)
	}
	return f
}

// LayoutForTag returns the hour:minute layout conventionally used by a locale.
// Locales without an explicit region use the region the tag most likely implies.
func LayoutForTag(tag language.Tag) string {
	region, _ := tag.Region()
	if twelveHourRegions[region.String()] {
		return Layout12h
	}
	return Layout24h
}

// In returns a copy of the formatter that renders in the given location.
func (f *Formatter) In(loc *time.Location) *Formatter {
	clone := *f
	if loc != nil {
		clone.location = loc
	}
	return &clone
}

// Format renders t as a display string.
func (f *Formatter) Format(t time.Time) string {
	return t.In(f.location).Format(f.layout)
}

// Locale returns the canonical locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Layout returns the Go time layout in use.
func (f *Formatter) Layout() string {
	return f.layout
}
