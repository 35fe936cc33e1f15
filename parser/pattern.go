// File: pattern.go
// Title: Pattern Production
// Description: Grammar production for patterns: identifiers, literal
//              patterns, the wildcard, and the tuple, list, and
//              dict/set destructuring forms.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial pattern production

package parser

import (
	brwast "github.com/AugmentedFifth/brouwer/ast"
)

// parsePattern parses one pattern. The alternatives are tried in
// order: identifier, character, string, and numeric literals, the
// wildcard underscore, then the tuple, list, and brace destructuring
// forms.
func (p *Parser) parsePattern() (*brwast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.cur.SkipBlanks()

	pattern := brwast.NewNode(brwast.Pattern)

	if ident := p.parseIdent(); ident != nil {
		pattern.Add(ident)

		return pattern, nil
	}

	chr, err := p.parseChrLit()
	if err != nil {
		return nil, err
	}

	if chr != nil {
		pattern.Add(chr)

		return pattern, nil
	}

	str, err := p.parseStrLit()
	if err != nil {
		return nil, err
	}

	if str != nil {
		pattern.Add(str)

		return pattern, nil
	}

	num, err := p.parseNumLit()
	if err != nil {
		return nil, err
	}

	if num != nil {
		pattern.Add(num)

		return pattern, nil
	}

	if underscore := p.charLeaf(brwast.Underscore, '_'); underscore != nil {
		pattern.Add(underscore)

		return pattern, nil
	}

	if lparen := p.charLeaf(brwast.LParen, '('); lparen != nil {
		return p.parseTuplePattern(pattern, lparen)
	}

	if lsq := p.charLeaf(brwast.LSq, '['); lsq != nil {
		return p.parseListPattern(pattern, lsq)
	}

	if lcurly := p.charLeaf(brwast.LCurly, '{'); lcurly != nil {
		return p.parseBracePattern(pattern, lcurly)
	}

	return nil, nil
}

// parseTuplePattern parses the remainder of a tuple pattern after its
// left paren: zero elements or two and more. The comma after the first
// element must directly follow it.
func (p *Parser) parseTuplePattern(
	pattern, lparen *brwast.Node,
) (*brwast.Node, error) {
	pattern.Add(lparen)

	first, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if first != nil {
		comma := p.charLeaf(brwast.Comma, ',')
		if comma == nil {
			return nil, p.syntaxError(
				"expected comma after first element of pattern tuple",
			)
		}

		second, err := p.parsePattern()
		if err != nil {
			return nil, err
		}

		if second == nil {
			return nil, p.syntaxError(
				"expected 0 or at least 2 elements in pattern tuple",
			)
		}

		pattern.Add(first, comma, second)

		for {
			p.cur.SkipBlanks()

			comma := p.charLeaf(brwast.Comma, ',')
			if comma == nil {
				break
			}

			element, err := p.parsePattern()
			if err != nil {
				return nil, err
			}

			if element == nil {
				break
			}

			pattern.Add(comma, element)
		}
	} else {
		p.cur.SkipBlanks()
	}

	rparen := p.charLeaf(brwast.RParen, ')')
	if rparen == nil {
		return nil, p.syntaxError("left paren in pattern requires )")
	}

	pattern.Add(rparen)

	return pattern, nil
}

// parseListPattern parses the remainder of a list pattern after its
// left square bracket.
func (p *Parser) parseListPattern(
	pattern, lsq *brwast.Node,
) (*brwast.Node, error) {
	pattern.Add(lsq)

	first, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if first != nil {
		pattern.Add(first)

		for {
			p.cur.SkipBlanks()

			comma := p.charLeaf(brwast.Comma, ',')
			if comma == nil {
				break
			}

			element, err := p.parsePattern()
			if err != nil {
				return nil, err
			}

			if element == nil {
				break
			}

			pattern.Add(comma, element)
		}
	} else {
		p.cur.SkipBlanks()
	}

	rsq := p.charLeaf(brwast.RSq, ']')
	if rsq == nil {
		return nil, p.syntaxError("left square bracket in pattern requires ]")
	}

	pattern.Add(rsq)

	return pattern, nil
}

// parseBracePattern parses the remainder of a brace pattern after its
// left curly bracket. An "=" after the first element selects the dict
// form with key-value entries; otherwise the elements form a set
// pattern.
func (p *Parser) parseBracePattern(
	pattern, lcurly *brwast.Node,
) (*brwast.Node, error) {
	pattern.Add(lcurly)

	first, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if first != nil {
		pattern.Add(first)
		p.cur.SkipBlanks()

		if equals := p.charLeaf(brwast.Equals, '='); equals != nil {
			value, err := p.parsePattern()
			if err != nil {
				return nil, err
			}

			if value == nil {
				return nil, p.syntaxError(
					"expected value pattern after first = of dict pattern",
				)
			}

			pattern.Add(equals, value)

			if err := p.parseDictPatternEntries(pattern); err != nil {
				return nil, err
			}
		} else {
			for {
				p.cur.SkipBlanks()

				comma := p.charLeaf(brwast.Comma, ',')
				if comma == nil {
					break
				}

				element, err := p.parsePattern()
				if err != nil {
					return nil, err
				}

				if element == nil {
					break
				}

				pattern.Add(comma, element)
			}
		}
	} else {
		p.cur.SkipBlanks()
	}

	rcurly := p.charLeaf(brwast.RCurly, '}')
	if rcurly == nil {
		return nil, p.syntaxError("left curly bracket in pattern requires }")
	}

	pattern.Add(rcurly)

	return pattern, nil
}

// parseDictPatternEntries parses the comma-separated key-value entries
// of a dict pattern after its first entry.
func (p *Parser) parseDictPatternEntries(pattern *brwast.Node) error {
	for {
		p.cur.SkipBlanks()

		comma := p.charLeaf(brwast.Comma, ',')
		if comma == nil {
			return nil
		}

		key, err := p.parsePattern()
		if err != nil {
			return err
		}

		if key == nil {
			return nil
		}

		p.cur.SkipBlanks()

		equals := p.charLeaf(brwast.Equals, '=')
		if equals == nil {
			return p.syntaxError("expected = after key of dict pattern")
		}

		value, err := p.parsePattern()
		if err != nil {
			return err
		}

		if value == nil {
			return p.syntaxError(
				"expected value pattern after = of dict pattern",
			)
		}

		pattern.Add(comma, key, equals, value)
	}
}
