// File: literal.go
// Title: Literal Productions
// Description: Grammar productions for the literal forms: tuples,
//              lists, dicts, sets, their comprehension variants,
//              numbers, characters, strings, infixed identifiers, and
//              bare operators.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial literal productions

package parser

import (
	"fmt"

	brwast "github.com/AugmentedFifth/brouwer/ast"
)

// parseTupleLit parses a tuple literal: zero elements or two and more,
// never exactly one. One parenthesized expression belongs to the
// parenthesized-expression alternative instead.
func (p *Parser) parseTupleLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	lparen := p.charLeaf(brwast.LParen, '(')
	if lparen == nil {
		return nil, nil
	}

	tuple := brwast.NewNode(brwast.TupleLit)
	tuple.Add(lparen)

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if first != nil {
		p.cur.SkipBlanks()

		comma := p.charLeaf(brwast.Comma, ',')
		if comma == nil {
			return nil, p.syntaxError("expected comma after first tuple element")
		}

		second, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if second == nil {
			return nil, p.syntaxError(
				"expected 0 or at least 2 elements in tuple",
			)
		}

		tuple.Add(first, comma, second)

		if err := p.commaList(tuple, p.parseExpr); err != nil {
			return nil, err
		}
	}

	rparen := p.charLeaf(brwast.RParen, ')')
	if rparen == nil {
		return nil, p.syntaxError("expected right paren to terminate tuple")
	}

	tuple.Add(rparen)

	return tuple, nil
}

// parseListLit parses a list literal with zero or more comma-separated
// elements.
func (p *Parser) parseListLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	lsq := p.charLeaf(brwast.LSq, '[')
	if lsq == nil {
		return nil, nil
	}

	list := brwast.NewNode(brwast.ListLit)
	list.Add(lsq)

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if first != nil {
		list.Add(first)

		if err := p.commaList(list, p.parseExpr); err != nil {
			return nil, err
		}
	}

	rsq := p.charLeaf(brwast.RSq, ']')
	if rsq == nil {
		return nil, p.syntaxError("left square bracket in list literal requires ]")
	}

	list.Add(rsq)

	return list, nil
}

// parseListComp parses a list comprehension: a head expression, a bar,
// and comma-separated generators or guard expressions.
func (p *Parser) parseListComp() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	lsq := p.charLeaf(brwast.LSq, '[')
	if lsq == nil {
		return nil, nil
	}

	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if head == nil {
		return nil, p.syntaxError(
			"expected expression on left-hand side of list comprehension",
		)
	}

	p.cur.SkipBlanks()

	bar := p.charLeaf(brwast.Bar, '|')
	if bar == nil {
		return nil, p.syntaxError("expected | for list comprehension")
	}

	comp := brwast.NewNode(brwast.ListComp)
	comp.Add(lsq, head, bar)

	if err := p.parseCompItems(comp); err != nil {
		return nil, err
	}

	rsq := p.charLeaf(brwast.RSq, ']')
	if rsq == nil {
		return nil, p.syntaxError("expected ] to terminate list comprehension")
	}

	comp.Add(rsq)

	return comp, nil
}

// parseDictLit parses a dict literal: empty braces or one and more
// key-value entries. When the braces open with something that is not
// an entry the speculation is undone so the set alternatives can claim
// the text.
func (p *Parser) parseDictLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	lcurly := p.charLeaf(brwast.LCurly, '{')
	if lcurly == nil {
		return nil, nil
	}

	dict := brwast.NewNode(brwast.DictLit)
	dict.Add(lcurly)

	first, err := p.parseDictEntry()
	if err != nil {
		return nil, err
	}

	if first == nil {
		if rcurly := p.charLeaf(brwast.RCurly, '}'); rcurly != nil {
			dict.Add(rcurly)

			return dict, nil
		}

		p.cur.ResetTo(mark)

		return nil, nil
	}

	dict.Add(first)

	if err := p.commaList(dict, p.parseDictEntry); err != nil {
		return nil, err
	}

	rcurly := p.charLeaf(brwast.RCurly, '}')
	if rcurly == nil {
		return nil, p.syntaxError("left curly bracket in dict literal requires }")
	}

	dict.Add(rcurly)

	return dict, nil
}

// parseDictComp parses a dict comprehension: a head entry, a bar, and
// comma-separated generators or guard expressions.
func (p *Parser) parseDictComp() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	lcurly := p.charLeaf(brwast.LCurly, '{')
	if lcurly == nil {
		return nil, nil
	}

	head, err := p.parseDictEntry()
	if err != nil {
		return nil, err
	}

	if head == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	p.cur.SkipBlanks()

	bar := p.charLeaf(brwast.Bar, '|')
	if bar == nil {
		return nil, p.syntaxError("expected | for dict comprehension")
	}

	comp := brwast.NewNode(brwast.DictComp)
	comp.Add(lcurly, head, bar)

	if err := p.parseCompItems(comp); err != nil {
		return nil, err
	}

	rcurly := p.charLeaf(brwast.RCurly, '}')
	if rcurly == nil {
		return nil, p.syntaxError("expected } to terminate dict comprehension")
	}

	comp.Add(rcurly)

	return comp, nil
}

// parseSetLit parses a set literal with one or more comma-separated
// elements. Empty braces belong to the dict literal alternative.
func (p *Parser) parseSetLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	lcurly := p.charLeaf(brwast.LCurly, '{')
	if lcurly == nil {
		return nil, nil
	}

	set := brwast.NewNode(brwast.SetLit)
	set.Add(lcurly)

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if first != nil {
		set.Add(first)

		if err := p.commaList(set, p.parseExpr); err != nil {
			return nil, err
		}
	}

	rcurly := p.charLeaf(brwast.RCurly, '}')
	if rcurly == nil {
		return nil, p.syntaxError("left curly bracket in set literal requires }")
	}

	set.Add(rcurly)

	return set, nil
}

// parseSetComp parses a set comprehension: a head expression, a bar,
// and comma-separated generators or guard expressions.
func (p *Parser) parseSetComp() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	lcurly := p.charLeaf(brwast.LCurly, '{')
	if lcurly == nil {
		return nil, nil
	}

	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if head == nil {
		return nil, p.syntaxError(
			"expected expression on left-hand side of set comprehension",
		)
	}

	p.cur.SkipBlanks()

	bar := p.charLeaf(brwast.Bar, '|')
	if bar == nil {
		return nil, p.syntaxError("expected | for set comprehension")
	}

	comp := brwast.NewNode(brwast.SetComp)
	comp.Add(lcurly, head, bar)

	if err := p.parseCompItems(comp); err != nil {
		return nil, err
	}

	rcurly := p.charLeaf(brwast.RCurly, '}')
	if rcurly == nil {
		return nil, p.syntaxError("expected } to terminate set comprehension")
	}

	comp.Add(rcurly)

	return comp, nil
}

// parseCompItems parses the generator-or-guard list shared by every
// comprehension form, appending the items flat onto the comprehension
// node.
func (p *Parser) parseCompItems(comp *brwast.Node) error {
	first, err := p.parseCompItem()
	if err != nil {
		return err
	}

	if first == nil {
		return nil
	}

	comp.Add(first)
	p.cur.SkipBlanks()

	return p.commaList(comp, p.parseCompItem)
}

// parseCompItem parses one comprehension item: a generator when one
// applies, otherwise a guard expression.
func (p *Parser) parseCompItem() (*brwast.Node, error) {
	gen, err := p.parseGenerator()
	if err != nil {
		return nil, err
	}

	if gen != nil {
		return gen, nil
	}

	return p.parseExpr()
}

// parseDictEntry parses one "key = value" dict entry. When the "="
// never appears the whole speculation is undone so brace disambiguation
// can fall through to the set alternatives.
func (p *Parser) parseDictEntry() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	key, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if key == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	equals := p.charLeaf(brwast.Equals, '=')
	if equals == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, p.syntaxError(
			"expected expression to be assigned to dict key",
		)
	}

	entry := brwast.NewNode(brwast.DictEntry)
	entry.Add(key, equals, value)

	return entry, nil
}

// parseGenerator parses a "pattern <- expr" comprehension generator.
// The arrow must directly follow the pattern's final character.
func (p *Parser) parseGenerator() (*brwast.Node, error) {
	mark := p.cur.Mark()

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, nil
	}

	arrow := p.opLeaf(brwast.LArrow, "<-")
	if arrow == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	source, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if source == nil {
		return nil, p.syntaxError("expected expression after <-")
	}

	gen := brwast.NewNode(brwast.Generator)
	gen.Add(pattern, arrow, source)

	return gen, nil
}

// parseNumLit parses a numeric literal: an optional minus, then either
// the NaN or Infinity keyword or a digit run with an optional decimal
// part. The absolute-value text is stored without the sign.
func (p *Parser) parseNumLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	minus := p.opLeaf(brwast.Minus, "-")
	if minus != nil {
		p.cur.SkipBlanks()
	}

	if kw := p.keywordLeaf(brwast.NanKeyword, "NaN"); kw != nil {
		return wrapRealLit(minus, kw), nil
	}

	if kw := p.keywordLeaf(brwast.InfinityKeyword, "Infinity"); kw != nil {
		return wrapRealLit(minus, kw), nil
	}

	if !isDigit(p.cur.Peek()) {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	var digits []rune
	for isDigit(p.cur.Peek()) {
		digits = append(digits, p.cur.Peek())
		p.cur.Advance()
	}

	if p.cur.Peek() != '.' {
		intLit := brwast.NewNode(brwast.IntLit)
		intLit.Add(minus, brwast.NewLeaf(brwast.AbsInt, string(digits)))

		numLit := brwast.NewNode(brwast.NumLit)
		numLit.Add(intLit)

		return numLit, nil
	}

	digits = append(digits, '.')
	p.cur.Advance()

	if !isDigit(p.cur.Peek()) {
		return nil, p.syntaxError(
			"expected at least one digit after decimal point",
		)
	}

	for isDigit(p.cur.Peek()) {
		digits = append(digits, p.cur.Peek())
		p.cur.Advance()
	}

	return wrapRealLit(minus, brwast.NewLeaf(brwast.AbsReal, string(digits))), nil
}

// wrapRealLit builds NumLit[RealLit[minus?, magnitude]].
func wrapRealLit(minus, magnitude *brwast.Node) *brwast.Node {
	realLit := brwast.NewNode(brwast.RealLit)
	realLit.Add(minus, magnitude)

	numLit := brwast.NewNode(brwast.NumLit)
	numLit.Add(realLit)

	return numLit
}

// parseChrLit parses a single-quoted character literal.
func (p *Parser) parseChrLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	open := p.charLeaf(brwast.SingleQuote, '\'')
	if open == nil {
		return nil, nil
	}

	chr := p.parseChrChr()
	if chr == nil {
		return nil, p.syntaxError("unexpected ' or EOF")
	}

	close_ := p.charLeaf(brwast.SingleQuote, '\'')
	if close_ == nil {
		return nil, p.syntaxError(
			fmt.Sprintf("expected ', got: %c", p.cur.CurrentChar()),
		)
	}

	chrLit := brwast.NewNode(brwast.ChrLit)
	chrLit.Add(open, chr, close_)

	return chrLit, nil
}

// parseChrChr parses the payload of a character literal: an escape
// sequence or any one character other than a quote or backslash. The
// leaf text is the raw source text, escapes included.
func (p *Parser) parseChrChr() *brwast.Node {
	if p.cur.ExpectChar('\\') {
		esc, ok := p.cur.ExpectEscapeChar()
		if !ok {
			return nil
		}

		return brwast.NewLeaf(brwast.ChrChr, string([]rune{'\\', esc}))
	}

	ch, ok := p.cur.ExpectNotChrCtrl()
	if !ok {
		return nil
	}

	return brwast.NewLeaf(brwast.ChrChr, string(ch))
}

// parseStrLit parses a double-quoted string literal, one leaf per
// source character or escape sequence.
func (p *Parser) parseStrLit() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	open := p.charLeaf(brwast.DoubleQuote, '"')
	if open == nil {
		return nil, nil
	}

	strLit := brwast.NewNode(brwast.StrLit)
	strLit.Add(open)

	for {
		sc := p.parseStrChr()
		if sc == nil {
			break
		}

		strLit.Add(sc)
	}

	close_ := p.charLeaf(brwast.DoubleQuote, '"')
	if close_ == nil {
		return nil, p.syntaxError(
			fmt.Sprintf("expected \", got: %c", p.cur.CurrentChar()),
		)
	}

	strLit.Add(close_)

	return strLit, nil
}

// parseStrChr parses one string-literal character or escape sequence.
func (p *Parser) parseStrChr() *brwast.Node {
	if p.cur.ExpectChar('\\') {
		esc, ok := p.cur.ExpectEscapeChar()
		if !ok {
			return nil
		}

		return brwast.NewLeaf(brwast.StrChr, string([]rune{'\\', esc}))
	}

	ch, ok := p.cur.ExpectNotStrCtrl()
	if !ok {
		return nil
	}

	return brwast.NewLeaf(brwast.StrChr, string(ch))
}

// parseInfixed parses a backtick-quoted identifier used in operator
// position.
func (p *Parser) parseInfixed() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	open := p.charLeaf(brwast.Backtick, '`')
	if open == nil {
		return nil, nil
	}

	ident, err := p.parseQualIdent()
	if err != nil {
		return nil, err
	}

	if ident == nil {
		return nil, p.syntaxError("expected identifier after `")
	}

	close_ := p.charLeaf(brwast.Backtick, '`')
	if close_ == nil {
		return nil, p.syntaxError("expected closing `")
	}

	infixed := brwast.NewNode(brwast.Infixed)
	infixed.Add(open, ident, close_)

	return infixed, nil
}

// parseOp parses a maximal run of operator characters. Reserved
// operators are syntax errors here; the forms that use them consume
// them before this alternative is reached.
func (p *Parser) parseOp() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	var chars []rune
	for {
		ch, ok := p.cur.ExpectOpChar()
		if !ok {
			break
		}

		chars = append(chars, ch)
	}

	if len(chars) == 0 {
		return nil, nil
	}

	op := string(chars)
	if isReservedOp(op) {
		return nil, p.syntaxError(
			fmt.Sprintf("the operator %s is reserved", op),
		)
	}

	return brwast.NewLeaf(brwast.Op, op), nil
}
