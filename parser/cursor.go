// File: cursor.go
// Title: Character Cursor
// Description: Implements the backtracking character cursor the
//              grammar productions read from. The cursor holds the
//              fully decoded source in memory, so speculative
//              productions save an offset and restore it exactly
//              rather than re-queueing consumed characters.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial cursor implementation

package parser

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwstringx "github.com/AugmentedFifth/brouwer/utils/stringx"
)

// Cursor is a backtracking character cursor over decoded source text.
// Productions read through Peek and Advance, and undo speculative
// consumption by saving an offset with Mark and later restoring it
// with ResetTo. Restoration is exact: a reset cursor behaves as if the
// speculation never happened.
type Cursor struct {
	src []rune
	pos int
}

// NewCursor reads all of r and returns a cursor over its contents.
// The input must be valid UTF-8.
func NewCursor(r io.Reader) (*Cursor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, brwerror.Wrap(err, "failed to read source").
			WithCode(brwerror.CodeIOError)
	}

	if !utf8.Valid(data) {
		return nil, brwerror.New("source is not valid UTF-8").
			WithCode(brwerror.CodeIOError)
	}

	return &Cursor{src: []rune(string(data))}, nil
}

// NewCursorFromString returns a cursor over s.
func NewCursorFromString(s string) *Cursor {
	return &Cursor{src: []rune(s)}
}

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Peek returns the rune at the cursor without consuming it, or 0 once
// the input is exhausted.
func (c *Cursor) Peek() rune {
	if c.pos >= len(c.src) {
		return 0
	}

	return c.src[c.pos]
}

// Advance consumes one rune. Advancing past the end is a no-op.
func (c *Cursor) Advance() {
	if c.pos < len(c.src) {
		c.pos++
	}
}

// Mark returns the current offset for a later ResetTo.
func (c *Cursor) Mark() int {
	return c.pos
}

// ResetTo restores the cursor to an offset previously obtained from
// Mark. Offsets outside the input are ignored.
func (c *Cursor) ResetTo(mark int) {
	if mark >= 0 && mark <= len(c.src) {
		c.pos = mark
	}
}

// Offset returns the number of runes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Len returns the total number of runes in the input.
func (c *Cursor) Len() int {
	return len(c.src)
}

// CurrentChar returns the rune at the cursor, or the final rune of the
// input once the cursor has passed the end. Error messages that name
// the offending character use this so that end-of-input failures still
// report the character that was last seen.
func (c *Cursor) CurrentChar() rune {
	if c.pos < len(c.src) {
		return c.src[c.pos]
	}

	if len(c.src) == 0 {
		return 0
	}

	return c.src[len(c.src)-1]
}

// SkipBlanks consumes a run of blank characters (spaces and tabs),
// stopping at the first character that is not blank. Line breaks are
// not blanks.
func (c *Cursor) SkipBlanks() {
	for c.pos < len(c.src) && isBlank(c.src[c.pos]) {
		c.pos++
	}
}

// ExpectChar consumes ch if it is the next rune and reports whether it
// did.
func (c *Cursor) ExpectChar(ch rune) bool {
	if c.Peek() != ch {
		return false
	}

	c.pos++

	return true
}

// ExpectKeyword consumes kwd if it appears next and is not immediately
// followed by an identifier character. On any failure the cursor is
// fully restored.
func (c *Cursor) ExpectKeyword(kwd string) bool {
	if kwd == "" {
		return false
	}

	mark := c.pos

	for _, r := range kwd {
		if c.Peek() != r {
			c.pos = mark

			return false
		}

		c.pos++
	}

	if isIdentPart(c.Peek()) {
		c.pos = mark

		return false
	}

	return true
}

// ExpectOp consumes op if it appears next and is not immediately
// followed by another operator character, so "->" does not match
// inside "->>". On any failure the cursor is fully restored.
func (c *Cursor) ExpectOp(op string) bool {
	if op == "" {
		return false
	}

	mark := c.pos

	for _, r := range op {
		if c.Peek() != r {
			c.pos = mark

			return false
		}

		c.pos++
	}

	if isOpChar(c.Peek()) {
		c.pos = mark

		return false
	}

	return true
}

// ExpectOpChar consumes and returns the next rune if it is an operator
// character.
func (c *Cursor) ExpectOpChar() (rune, bool) {
	ch := c.Peek()

	if !isOpChar(ch) {
		return 0, false
	}

	c.pos++

	return ch, true
}

// ExpectEscapeChar consumes and returns the next rune if it is one of
// the characters that may legally follow a backslash in a character or
// string literal.
func (c *Cursor) ExpectEscapeChar() (rune, bool) {
	switch ch := c.Peek(); ch {
	case '\'', '"', 't', 'v', 'n', 'r', 'b', '0':
		c.pos++

		return ch, true
	default:
		return 0, false
	}
}

// ExpectNotChrCtrl consumes and returns the next rune unless it is a
// single quote, a backslash, or the end of input.
func (c *Cursor) ExpectNotChrCtrl() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}

	ch := c.src[c.pos]
	if ch == '\'' || ch == '\\' {
		return 0, false
	}

	c.pos++

	return ch, true
}

// ExpectNotStrCtrl consumes and returns the next rune unless it is a
// double quote, a backslash, or the end of input.
func (c *Cursor) ExpectNotStrCtrl() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}

	ch := c.src[c.pos]
	if ch == '"' || ch == '\\' {
		return 0, false
	}

	c.pos++

	return ch, true
}

// Position derives the 1-based line and column of the cursor. It scans
// the consumed prefix, so it is intended for error reporting rather
// than per-character bookkeeping.
func (c *Cursor) Position() (line, column int) {
	line, column = 1, 1

	for i := 0; i < c.pos && i < len(c.src); i++ {
		if c.src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return line, column
}

// Context returns up to width runes of source text surrounding the
// cursor, with control characters made visible. Used in error details.
func (c *Cursor) Context(width int) string {
	if len(c.src) == 0 || width <= 0 {
		return ""
	}

	begin := c.pos - width/2
	if begin < 0 {
		begin = 0
	}

	end := begin + width
	if end > len(c.src) {
		end = len(c.src)
	}

	return brwstringx.VisibleControl(string(c.src[begin:end]))
}

// opChars holds every character that may appear in an operator run.
const opChars = `?<>=%\~!@#$|&*/+^-:;`

func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

func isNewline(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

func isOpChar(ch rune) bool {
	return strings.ContainsRune(opChars, ch)
}

// isReservedOp reports whether an operator run exactly matches one of
// the forms the grammar claims for itself. A reserved run is a hard
// error when it reaches the bare-operator production.
func isReservedOp(op string) bool {
	switch op {
	case ":", "->", "=>", "<-", "--", "|", `\`, "=", ".", "::":
		return true
	default:
		return false
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
