// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended by TruncateWidth when it cuts a string.
const Ellipsis = "…"

// StringWidth returns the number of terminal columns s occupies.
// East Asian wide characters count as 2.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth cuts s to at most maxWidth columns, ending with an ellipsis
// when anything was removed. Wide characters are never split.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// WrapWidth hard-wraps s so no line exceeds width columns.
//
// Existing line breaks are kept. Lines break at the last space that fits;
// runs with no space (CJK text, long URLs) break between characters.
// Leading and trailing whitespace inside a line is preserved, so the
// wrapped text joins back to the original words.
func WrapWidth(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var (
		out       []string
		cur       []rune
		curWidth  int
		lastSpace = -1
	)
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if curWidth+rw > width && len(cur) > 0 {
			if lastSpace > 0 && r != ' ' {
				out = append(out, string(cur[:lastSpace]))
				cur = append([]rune(nil), cur[lastSpace+1:]...)
			} else {
				out = append(out, string(cur))
				cur = cur[:0]
				if r == ' ' {
					// Break consumes the space.
					curWidth, lastSpace = 0, -1
					continue
				}
			}
			curWidth = runewidth.StringWidth(string(cur))
			lastSpace = -1
			for i, c := range cur {
				if c == ' ' {
					lastSpace = i
				}
			}
		}
		if r == ' ' {
			lastSpace = len(cur)
		}
		cur = append(cur, r)
		curWidth += rw
	}
	return append(out, string(cur))
}
