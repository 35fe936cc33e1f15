// File: ident.go
// Title: Identifier Productions
// Description: Grammar productions for plain, member, scoped,
//              qualified, and namespaced identifiers, and for type
//              identifiers.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial identifier productions

package parser

import (
	brwast "github.com/AugmentedFifth/brouwer/ast"
)

// parseIdent parses a plain identifier. A lone underscore does not
// qualify; it is left for the wildcard pattern to claim.
func (p *Parser) parseIdent() *brwast.Node {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	if !isIdentStart(p.cur.Peek()) {
		return nil
	}

	var chars []rune
	for isIdentPart(p.cur.Peek()) {
		chars = append(chars, p.cur.Peek())
		p.cur.Advance()
	}

	if len(chars) == 1 && chars[0] == '_' {
		p.cur.ResetTo(mark)

		return nil
	}

	return brwast.NewLeaf(brwast.Ident, string(chars))
}

// parseMemberIdent parses "left.right" member access.
func (p *Parser) parseMemberIdent() (*brwast.Node, error) {
	mark := p.cur.Mark()

	left := p.parseIdent()
	if left == nil {
		return nil, nil
	}

	dot := p.opLeaf(brwast.Dot, ".")
	if dot == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	right := p.parseIdent()
	if right == nil {
		return nil, p.syntaxError("expected identifier after dot operator")
	}

	member := brwast.NewNode(brwast.MemberIdent)
	member.Add(left, dot, right)

	return member, nil
}

// parseScopedIdent parses "left::right" namespace access.
func (p *Parser) parseScopedIdent() (*brwast.Node, error) {
	mark := p.cur.Mark()

	left := p.parseIdent()
	if left == nil {
		return nil, nil
	}

	doubleColon := p.opLeaf(brwast.DoubleColon, "::")
	if doubleColon == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	right := p.parseIdent()
	if right == nil {
		return nil, p.syntaxError("expected identifier after dot operator")
	}

	scoped := brwast.NewNode(brwast.ScopedIdent)
	scoped.Add(left, doubleColon, right)

	return scoped, nil
}

// parseQualIdent parses a qualified identifier: member access, scoped
// access, or a plain identifier, in that order.
func (p *Parser) parseQualIdent() (*brwast.Node, error) {
	member, err := p.parseMemberIdent()
	if err != nil {
		return nil, err
	}

	if member != nil {
		qual := brwast.NewNode(brwast.QualIdent)
		qual.Add(member)

		return qual, nil
	}

	scoped, err := p.parseScopedIdent()
	if err != nil {
		return nil, err
	}

	if scoped != nil {
		qual := brwast.NewNode(brwast.QualIdent)
		qual.Add(scoped)

		return qual, nil
	}

	plain := p.parseIdent()
	if plain == nil {
		return nil, nil
	}

	qual := brwast.NewNode(brwast.QualIdent)
	qual.Add(plain)

	return qual, nil
}

// parseNamespacedIdent parses a scoped or plain identifier; member
// access does not name a namespace.
func (p *Parser) parseNamespacedIdent() (*brwast.Node, error) {
	scoped, err := p.parseScopedIdent()
	if err != nil {
		return nil, err
	}

	if scoped != nil {
		namespaced := brwast.NewNode(brwast.NamespacedIdent)
		namespaced.Add(scoped)

		return namespaced, nil
	}

	plain := p.parseIdent()
	if plain == nil {
		return nil, nil
	}

	namespaced := brwast.NewNode(brwast.NamespacedIdent)
	namespaced.Add(plain)

	return namespaced, nil
}

// parseTypeIdent parses a type identifier: a namespaced name, a tuple
// type of zero or two and more element types, a list type, or a
// dict/set type of one or two element types.
func (p *Parser) parseTypeIdent() (*brwast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.cur.SkipBlanks()

	namespaced, err := p.parseNamespacedIdent()
	if err != nil {
		return nil, err
	}

	if namespaced != nil {
		typeIdent := brwast.NewNode(brwast.TypeIdent)
		typeIdent.Add(namespaced)

		return typeIdent, nil
	}

	if lparen := p.charLeaf(brwast.LParen, '('); lparen != nil {
		return p.parseTupleType(lparen)
	}

	if lsq := p.charLeaf(brwast.LSq, '['); lsq != nil {
		element, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if element == nil {
			return nil, p.syntaxError("expected type identifier after [")
		}

		rsq := p.charLeaf(brwast.RSq, ']')
		if rsq == nil {
			return nil, p.syntaxError("expected closing ] of list type")
		}

		typeIdent := brwast.NewNode(brwast.TypeIdent)
		typeIdent.Add(lsq, element, rsq)

		return typeIdent, nil
	}

	if lcurly := p.charLeaf(brwast.LCurly, '{'); lcurly != nil {
		first, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if first == nil {
			return nil, p.syntaxError("expected type identifier after {")
		}

		typeIdent := brwast.NewNode(brwast.TypeIdent)
		typeIdent.Add(lcurly, first)

		p.cur.SkipBlanks()

		if comma := p.charLeaf(brwast.Comma, ','); comma != nil {
			second, err := p.parseTypeIdent()
			if err != nil {
				return nil, err
			}

			if second == nil {
				return nil, p.syntaxError("expected type identifier after ,")
			}

			typeIdent.Add(comma, second)
		}

		rcurly := p.charLeaf(brwast.RCurly, '}')
		if rcurly == nil {
			return nil, p.syntaxError("expected closing } of dict/set type")
		}

		typeIdent.Add(rcurly)

		return typeIdent, nil
	}

	return nil, nil
}

// parseTupleType parses the remainder of a tuple type after its left
// paren: the unit type or two and more comma-separated element types.
func (p *Parser) parseTupleType(lparen *brwast.Node) (*brwast.Node, error) {
	typeIdent := brwast.NewNode(brwast.TypeIdent)
	typeIdent.Add(lparen)

	first, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}

	if first != nil {
		p.cur.SkipBlanks()

		comma := p.charLeaf(brwast.Comma, ',')
		if comma == nil {
			return nil, p.syntaxError(
				"expected comma after first type tuple element",
			)
		}

		second, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if second == nil {
			return nil, p.syntaxError(
				"expected 0 or at least 2 elements in type tuple",
			)
		}

		typeIdent.Add(first, comma, second)
		p.cur.SkipBlanks()

		if err := p.commaList(typeIdent, p.parseTypeIdent); err != nil {
			return nil, err
		}
	} else {
		p.cur.SkipBlanks()
	}

	rparen := p.charLeaf(brwast.RParen, ')')
	if rparen == nil {
		return nil, p.syntaxError(
			"expected right paren to terminate type tuple",
		)
	}

	typeIdent.Add(rparen)

	return typeIdent, nil
}
