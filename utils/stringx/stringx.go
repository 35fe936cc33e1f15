// File: stringx.go
// Title: Core String Utilities
// Description: Implements validation predicates and Unicode-aware
//              formatting helpers for strings. All functions are pure and
//              safe to call with empty input.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has length zero.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to at most maxLen runes, appending the given
// ellipsis when truncation occurs. The function is Unicode-aware and never
// splits a multi-byte character. Strings that already fit are returned
// unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	keep := maxLen - ellipsisLen
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep == 0 {
			break
		}
		b.WriteRune(r)
		keep--
	}
	b.WriteString(ellipsis)

	return b.String()
}

// FirstLine returns the text up to, but not including, the first line
// break. Strings without a line break are returned unchanged.
func FirstLine(s string) string {
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}

// VisibleControl replaces line breaks and tabs in a string with their
// escaped spellings so the result is safe to embed in a single-line
// message.
func VisibleControl(s string) string {
	r := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)
	return r.Replace(s)
}
