// File: statement.go
// Title: Statement Productions
// Description: Grammar productions for the statement-like forms: the
//              module declaration, imports, lines, the subexpression
//              dispatch, bindings, function declarations, and the
//              block-bearing control constructs.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial statement productions

package parser

import (
	brwast "github.com/AugmentedFifth/brouwer/ast"
)

// parseModDecl parses the module declaration that opens every program:
// the module keyword, the module name, and an optional exposing or
// hiding list.
func (p *Parser) parseModDecl() (*brwast.Node, error) {
	kw := p.keywordLeaf(brwast.ModuleKeyword, "module")
	if kw == nil {
		return nil, nil
	}

	modDecl := brwast.NewNode(brwast.ModDecl)
	modDecl.Add(kw)

	name := p.parseIdent()
	if name == nil {
		return nil, p.syntaxError(
			"expected name of module to be plain identifier",
		)
	}

	modDecl.Add(name)
	p.cur.SkipBlanks()

	listKw := p.keywordLeaf(brwast.ExposingKeyword, "exposing")
	if listKw == nil {
		listKw = p.keywordLeaf(brwast.HidingKeyword, "hiding")
	}

	if listKw != nil {
		modDecl.Add(listKw)

		first := p.parseIdent()
		if first == nil {
			return nil, p.syntaxError(
				"expected at least one item in module export/hide list",
			)
		}

		modDecl.Add(first)
		p.cur.SkipBlanks()

		err := p.commaList(modDecl, func() (*brwast.Node, error) {
			return p.parseIdent(), nil
		})
		if err != nil {
			return nil, err
		}
	}

	if !p.expectNewline() {
		return nil, p.syntaxError("expected newline after module declaration")
	}

	return modDecl, nil
}

// parseImport parses one import statement: the imported module name
// followed by either an "as" alias or a parenthesized import list,
// optionally prefixed with the hiding keyword.
func (p *Parser) parseImport() (*brwast.Node, error) {
	kw := p.keywordLeaf(brwast.ImportKeyword, "import")
	if kw == nil {
		return nil, nil
	}

	imp := brwast.NewNode(brwast.Import)
	imp.Add(kw)

	name := p.parseIdent()
	if name == nil {
		return nil, p.syntaxError("expected module name after import keyword")
	}

	imp.Add(name)
	p.cur.SkipBlanks()

	if asKw := p.keywordLeaf(brwast.AsKeyword, "as"); asKw != nil {
		imp.Add(asKw)

		alias := p.parseIdent()
		if alias == nil {
			return nil, p.syntaxError(
				"expected namespace alias after as keyword",
			)
		}

		imp.Add(alias)
	} else {
		if hidingKw := p.keywordLeaf(brwast.HidingKeyword, "hiding"); hidingKw != nil {
			imp.Add(hidingKw)
		}

		p.cur.SkipBlanks()

		lparen := p.charLeaf(brwast.LParen, '(')
		if lparen == nil {
			return nil, p.syntaxError(
				"expected left paren to start import list",
			)
		}

		imp.Add(lparen)

		first := p.parseIdent()
		if first == nil {
			return nil, p.syntaxError(
				"expected at least one import item in import list",
			)
		}

		imp.Add(first)
		p.cur.SkipBlanks()

		err := p.commaList(imp, func() (*brwast.Node, error) {
			return p.parseIdent(), nil
		})
		if err != nil {
			return nil, err
		}

		p.cur.SkipBlanks()

		rparen := p.charLeaf(brwast.RParen, ')')
		if rparen == nil {
			return nil, p.syntaxError(
				"expected right paren to terminate import list",
			)
		}

		imp.Add(rparen)
	}

	if !p.expectNewline() {
		return nil, p.syntaxError("expected newline after import statement")
	}

	return imp, nil
}

// parseLine parses one line: an optional expression, an optional
// trailing line comment, and, when consumeNewline is set, the line's
// terminating break. Callers that embed a line inside another
// construct leave the break to the enclosing block mechanism.
func (p *Parser) parseLine(consumeNewline bool) (*brwast.Node, error) {
	p.cur.SkipBlanks()

	line := brwast.NewNode(brwast.Line)

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	line.Add(expr)

	p.consumeLineComment(consumeNewline)

	if consumeNewline {
		// A line must end with a break unless it ends the input.
		if !p.expectNewline() && !p.cur.AtEnd() {
			return nil, p.syntaxError("expected newline after line")
		}
	}

	return line, nil
}

// consumeLineComment consumes a "--" comment through the end of the
// line and reports whether one was present.
func (p *Parser) consumeLineComment(consumeNewline bool) bool {
	p.cur.SkipBlanks()

	if !p.cur.ExpectOp("--") {
		return false
	}

	for !p.cur.AtEnd() && !isNewline(p.cur.Peek()) {
		p.cur.Advance()
	}

	if consumeNewline {
		p.expectNewline()
	}

	return true
}

// parseExpr parses one or more juxtaposed subexpressions.
func (p *Parser) parseExpr() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	first, err := p.parseSubexpr()
	if err != nil {
		return nil, err
	}

	if first == nil {
		return nil, nil
	}

	expr := brwast.NewNode(brwast.Expr)
	expr.Add(first)

	for {
		sub, err := p.parseSubexpr()
		if err != nil {
			return nil, err
		}

		if sub == nil {
			return expr, nil
		}

		expr.Add(sub)
	}
}

// parseSubexpr parses a single subexpression. The alternatives are
// tried strictly in this order and the first success commits; several
// alternatives share a leading token, so the order is semantically
// load-bearing.
func (p *Parser) parseSubexpr() (*brwast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.cur.SkipBlanks()

	for _, alternative := range []func() (*brwast.Node, error){
		p.parseVar,
		p.parseAssign,
		p.parseFnDecl,
		p.parseParened,
		p.parseReturn,
		p.parseCase,
		p.parseIfElse,
		p.parseTry,
		p.parseWhile,
		p.parseFor,
		p.parseLambda,
		p.parseTupleLit,
		p.parseListLit,
		p.parseListComp,
		p.parseDictLit,
		p.parseDictComp,
		p.parseSetLit,
		p.parseSetComp,
		p.parseQualIdent,
		p.parseInfixed,
		p.parseNumLit,
		p.parseChrLit,
		p.parseStrLit,
		p.parseOp,
	} {
		node, err := alternative()
		if err != nil {
			return nil, err
		}

		if node != nil {
			subexpr := brwast.NewNode(brwast.Subexpr)
			subexpr.Add(node)

			return subexpr, nil
		}
	}

	return nil, nil
}

// parseVar parses a var binding: the var keyword, a pattern, an
// optional type annotation, and a required initializer.
func (p *Parser) parseVar() (*brwast.Node, error) {
	kw := p.keywordLeaf(brwast.VarKeyword, "var")
	if kw == nil {
		return nil, nil
	}

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, p.syntaxError(
			"left-hand side of var assignment must be a pattern",
		)
	}

	p.cur.SkipBlanks()

	v := brwast.NewNode(brwast.Var)
	v.Add(kw, pattern)

	if colon := p.opLeaf(brwast.Colon, ":"); colon != nil {
		typ, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if typ == nil {
			return nil, p.syntaxError(
				"type of var binding must be a valid type identifier",
			)
		}

		v.Add(colon, typ)
	}

	equals := p.charLeaf(brwast.Equals, '=')
	if equals == nil {
		return nil, p.syntaxError("var assignment must use =")
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		return nil, p.syntaxError(
			"right-hand side of var assignment must be a valid expression",
		)
	}

	v.Add(equals, expr)

	return v, nil
}

// parseAssign parses a plain assignment: a pattern, an optional type
// annotation, and a required right-hand expression. When the "=" never
// appears the whole speculation is undone so other alternatives can
// re-consume the pattern's text.
func (p *Parser) parseAssign() (*brwast.Node, error) {
	mark := p.cur.Mark()

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	assign := brwast.NewNode(brwast.Assign)
	assign.Add(pattern)

	if colon := p.opLeaf(brwast.Colon, ":"); colon != nil {
		typ, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if typ == nil {
			return nil, p.syntaxError(
				"type of binding must be a valid identifier",
			)
		}

		assign.Add(colon, typ)
	}

	p.cur.SkipBlanks()

	equals := p.charLeaf(brwast.Equals, '=')
	if equals == nil {
		p.cur.ResetTo(mark)

		return nil, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		return nil, p.syntaxError(
			"right-hand side of assignment must be a valid expression",
		)
	}

	assign.Add(equals, expr)

	return assign, nil
}

// parseFnDecl parses a function declaration: name, parameters, an
// optional return type after "->", and an indented body block.
func (p *Parser) parseFnDecl() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.FnKeyword, "fn")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	name := p.parseIdent()
	if name == nil {
		return nil, p.syntaxError("expected function name")
	}

	p.cur.SkipBlanks()

	fnDecl := brwast.NewNode(brwast.FnDecl)
	fnDecl.Add(kw, name)

	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}

		if param == nil {
			break
		}

		fnDecl.Add(param)
	}

	p.cur.SkipBlanks()

	if arrow := p.opLeaf(brwast.RArrow, "->"); arrow != nil {
		retType, err := p.parseQualIdent()
		if err != nil {
			return nil, err
		}

		if retType == nil {
			return nil, p.syntaxError("expected type after arrow")
		}

		fnDecl.Add(arrow, retType)
	}

	if _, err := p.getBlock(fnDecl, brwast.Line); err != nil {
		return nil, err
	}

	return fnDecl, nil
}

// parseParam parses one function or lambda parameter: either a
// parenthesized, type-annotated pattern or a bare pattern.
func (p *Parser) parseParam() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	if lparen := p.charLeaf(brwast.LParen, '('); lparen != nil {
		pattern, err := p.parsePattern()
		if err != nil {
			return nil, err
		}

		if pattern == nil {
			p.cur.ResetTo(mark)

			return nil, nil
		}

		p.cur.SkipBlanks()

		colon := p.opLeaf(brwast.Colon, ":")
		if colon == nil {
			p.cur.ResetTo(mark)

			return nil, nil
		}

		typ, err := p.parseTypeIdent()
		if err != nil {
			return nil, err
		}

		if typ == nil {
			return nil, p.syntaxError("expected type")
		}

		rparen := p.charLeaf(brwast.RParen, ')')
		if rparen == nil {
			return nil, p.syntaxError("expected ) after type")
		}

		param := brwast.NewNode(brwast.Param)
		param.Add(lparen, pattern, colon, typ, rparen)

		return param, nil
	}

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, nil
	}

	param := brwast.NewNode(brwast.Param)
	param.Add(pattern)

	return param, nil
}

// parseParened parses a parenthesized expression. It wins only when
// the parens hold exactly one expression with no following comma;
// otherwise the speculation is undone so the tuple literal alternative
// can claim the text.
func (p *Parser) parseParened() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	mark := p.cur.Mark()

	lparen := p.charLeaf(brwast.LParen, '(')
	if lparen == nil {
		return nil, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		if p.cur.Peek() == ')' {
			p.cur.ResetTo(mark)

			return nil, nil
		}

		return nil, p.syntaxError("expected expression within parens")
	}

	switch p.cur.Peek() {
	case ')':
		rparen := p.charLeaf(brwast.RParen, ')')

		parened := brwast.NewNode(brwast.Parened)
		parened.Add(lparen, expr, rparen)

		return parened, nil
	case ',':
		p.cur.ResetTo(mark)

		return nil, nil
	default:
		return nil, p.syntaxError("expected closing paren")
	}
}

// parseReturn parses a return form with its required expression.
func (p *Parser) parseReturn() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.ReturnKeyword, "return")
	if kw == nil {
		return nil, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		return nil, p.syntaxError("expected expression to return")
	}

	ret := brwast.NewNode(brwast.Return)
	ret.Add(kw, expr)

	return ret, nil
}

// parseCase parses a case form: the subject expression and a block of
// case branches.
func (p *Parser) parseCase() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.CaseKeyword, "case")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	subject, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if subject == nil {
		return nil, p.syntaxError("expected subject expression for case")
	}

	c := brwast.NewNode(brwast.Case)
	c.Add(kw, subject)

	if _, err := p.getBlock(c, brwast.CaseBranch); err != nil {
		return nil, err
	}

	return c, nil
}

// parseCaseBranch parses one "pattern=> line" branch of a case block.
// The fat arrow must directly follow the pattern's final character.
func (p *Parser) parseCaseBranch() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, nil
	}

	arrow := p.opLeaf(brwast.FatRArrow, "=>")
	if arrow == nil {
		return nil, p.syntaxError("expected => while parsing case branch")
	}

	line, err := p.parseLine(false)
	if err != nil {
		return nil, err
	}

	if line == nil {
		return nil, p.syntaxError("expected expression(s) after =>")
	}

	branch := brwast.NewNode(brwast.CaseBranch)
	branch.Add(pattern, arrow, line)

	return branch, nil
}

// parseIfElse parses an if construct with an optional else branch. A
// following else continues the construct only when it sits at the same
// indentation as the if header; "else if" chains recurse, nesting each
// link as a child of the previous one.
func (p *Parser) parseIfElse() (*brwast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.IfKeyword, "if")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	condition, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if condition == nil {
		return nil, p.syntaxError("expected expression as if condition")
	}

	ifElse := brwast.NewNode(brwast.IfElse)
	ifElse.Add(kw, condition)

	startIndent, err := p.getBlock(ifElse, brwast.Line)
	if err != nil {
		return nil, err
	}

	if p.indent != startIndent {
		return ifElse, nil
	}

	elseKw := p.keywordLeaf(brwast.ElseKeyword, "else")
	if elseKw == nil {
		return ifElse, nil
	}

	ifElse.Add(elseKw)

	chained, err := p.parseIfElse()
	if err != nil {
		return nil, err
	}

	if chained != nil {
		ifElse.Add(chained)

		return ifElse, nil
	}

	if _, err := p.getBlock(ifElse, brwast.Line); err != nil {
		return nil, err
	}

	return ifElse, nil
}

// parseTry parses a try/catch construct. The catch must sit at the
// same indentation as the try and names the caught exception before
// its own block.
func (p *Parser) parseTry() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.TryKeyword, "try")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	try := brwast.NewNode(brwast.Try)
	try.Add(kw)

	startIndent, err := p.getBlock(try, brwast.Line)
	if err != nil {
		return nil, err
	}

	if p.indent != startIndent {
		return nil, p.syntaxError(
			"try must have corresponsing catch on same indent level",
		)
	}

	catchKw := p.keywordLeaf(brwast.CatchKeyword, "catch")
	if catchKw == nil {
		return nil, p.syntaxError("try must have corresponding catch")
	}

	exception := p.parseIdent()
	if exception == nil {
		return nil, p.syntaxError("catch must name the caught exception")
	}

	try.Add(catchKw, exception)

	if _, err := p.getBlock(try, brwast.Line); err != nil {
		return nil, err
	}

	return try, nil
}

// parseWhile parses a while loop: condition expression plus body
// block.
func (p *Parser) parseWhile() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.WhileKeyword, "while")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	condition, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if condition == nil {
		return nil, p.syntaxError("expected expression as while condition")
	}

	while := brwast.NewNode(brwast.While)
	while.Add(kw, condition)

	if _, err := p.getBlock(while, brwast.Line); err != nil {
		return nil, err
	}

	return while, nil
}

// parseFor parses a for loop: "for pattern in expr" plus body block.
func (p *Parser) parseFor() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	kw := p.keywordLeaf(brwast.ForKeyword, "for")
	if kw == nil {
		return nil, nil
	}

	p.cur.SkipBlanks()

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if pattern == nil {
		return nil, p.syntaxError(
			"expected pattern as first part of for header",
		)
	}

	p.cur.SkipBlanks()

	inKw := p.keywordLeaf(brwast.InKeyword, "in")
	if inKw == nil {
		return nil, p.syntaxError("missing in keyword of for loop")
	}

	iterated, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if iterated == nil {
		return nil, p.syntaxError("for must iterate over an expression")
	}

	for_ := brwast.NewNode(brwast.For)
	for_.Add(kw, pattern, inKw, iterated)

	if _, err := p.getBlock(for_, brwast.Line); err != nil {
		return nil, err
	}

	return for_, nil
}

// parseLambda parses a lambda: a backslash, comma-separated
// parameters, "->", and the body expression.
func (p *Parser) parseLambda() (*brwast.Node, error) {
	p.cur.SkipBlanks()

	backslash := p.charLeaf(brwast.Backslash, '\\')
	if backslash == nil {
		return nil, nil
	}

	first, err := p.parseParam()
	if err != nil {
		return nil, err
	}

	if first == nil {
		return nil, p.syntaxError("lambda expression requires 1+ args")
	}

	lambda := brwast.NewNode(brwast.Lambda)
	lambda.Add(backslash, first)

	p.cur.SkipBlanks()

	if err := p.commaList(lambda, p.parseParam); err != nil {
		return nil, err
	}

	arrow := p.opLeaf(brwast.RArrow, "->")
	if arrow == nil {
		return nil, p.syntaxError("lambda expression requires ->")
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if body == nil {
		return nil, p.syntaxError("lambda body must be expression")
	}

	lambda.Add(arrow, body)

	return lambda, nil
}
