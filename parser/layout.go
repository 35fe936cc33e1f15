// File: layout.go
// Title: Indentation Layout Engine
// Description: Implements the layout rule: block bodies are delimited
//              purely by a deeper, textually consistent run of leading
//              blank characters. Indentation is tracked as a literal
//              string, so consistency is a prefix check rather than a
//              column count, and tab/space mixing surfaces as a hard
//              error instead of a silent misparse.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial layout engine implementation

package parser

import (
	"strings"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
)

// expectNewline consumes a run of line breaks and blanks, recording
// the blanks that follow the final break as the new current
// indentation. Reports whether at least one break was found; when none
// is, nothing beyond leading blanks is consumed and the recorded
// indentation is unchanged.
func (p *Parser) expectNewline() bool {
	p.cur.SkipBlanks()

	if !isNewline(p.cur.Peek()) {
		return false
	}

	var indent []rune

	for {
		ch := p.cur.Peek()

		switch {
		case isNewline(ch):
			indent = indent[:0]
			p.cur.Advance()
		case isBlank(ch):
			indent = append(indent, ch)
			p.cur.Advance()
		default:
			p.indent = string(indent)

			return true
		}
	}
}

// getBlock parses an indented block body into parent: a newline after
// the construct's header, a block indentation that strictly extends
// the header's, one required item, then further items while the
// indentation stays exactly equal. It stops without error on the first
// dedent, leaving that indentation current, and returns the header
// indentation so callers can test whether a follow-up keyword at the
// same depth continues the construct.
func (p *Parser) getBlock(
	parent *brwast.Node,
	itemKind brwast.Kind,
) (string, error) {
	startIndent := p.indent

	if !p.expectNewline() {
		return "", p.syntaxError("expected newline after header")
	}

	blockIndent := p.indent

	if len(startIndent) >= len(blockIndent) ||
		!strings.HasPrefix(blockIndent, startIndent) {
		return "", p.syntaxError("improper indentation after header")
	}

	item, err := p.parseBlockItem(itemKind)
	if err != nil {
		return "", err
	}

	if item == nil {
		return "", p.syntaxError("expected at least one item in block")
	}

	parent.Add(item)

	if !p.expectNewline() {
		return "", p.syntaxError(
			"expected newline after first item of block",
		)
	}

	for p.indent == blockIndent {
		item, err := p.parseBlockItem(itemKind)
		if err != nil {
			return "", err
		}

		if item == nil {
			return "", p.syntaxError("expected item in block")
		}

		parent.Add(item)

		if !p.expectNewline() {
			return "", p.syntaxError("expected newline after block item")
		}
	}

	return startIndent, nil
}

// parseBlockItem dispatches on the block's item production.
func (p *Parser) parseBlockItem(itemKind brwast.Kind) (*brwast.Node, error) {
	switch itemKind {
	case brwast.Line:
		return p.parseLine(false)
	case brwast.CaseBranch:
		return p.parseCaseBranch()
	default:
		return nil, brwerror.New("unhandled body item type").
			WithCode(brwerror.CodeInternal).
			WithDetail("item_kind", itemKind.String())
	}
}
