// Package components holds pure text-measurement helpers for escape-laden
// terminal strings. The width model is deliberately simple: an escape
// sequence runs from ESC through the first alphabetic character, contributes
// zero columns, and everything else is one column, or two for code points
// above U+00FF (an approximation of East-Asian wide widths).
package components

import (
	"strings"
	"unicode"
)

const esc = '\x1b'

// ellipsisSuffix terminates a truncated line: three visible columns plus a
// reset so no styling is left open at the cut.
const ellipsisSuffix = "...\x1b[0m"

// VisibleWidth returns the number of terminal columns s occupies. Escape
// sequences contribute nothing; an unterminated escape swallows the rest of
// the string rather than failing.
func VisibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == esc:
			inEscape = true
		case inEscape:
			if unicode.IsLetter(r) {
				inEscape = false
			}
		case r > 'ÿ':
			width += 2
		default:
			width++
		}
	}
	return width
}

// TruncateToWidth cuts s to at most maxWidth visible columns. Strings that
// already fit are returned unchanged. Escape sequences are always copied
// whole and never count against the budget. When the next visible character
// would push past maxWidth-3, the scan stops and "..." plus a reset escape
// is appended; any remaining source text is discarded.
func TruncateToWidth(s string, maxWidth int) string {
	if VisibleWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - 3
	if budget < 0 {
		budget = 0
	}

	var b strings.Builder
	b.Grow(len(s))
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == esc:
			inEscape = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
		default:
			runeWidth := 1
			if r > 'ÿ' {
				runeWidth = 2
			}
			if width+runeWidth > budget {
				b.WriteString(ellipsisSuffix)
				return b.String()
			}
			b.WriteRune(r)
			width += runeWidth
		}
	}
	return b.String()
}
