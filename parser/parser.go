// File: parser.go
// Title: Recursive Descent Parser
// Description: Implements the parser engine: construction and
//              configuration, the top of the grammar (Root and Prog),
//              positioned error reporting, and the recursion budget
//              that bounds deeply nested input.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial parser engine implementation

package parser

import (
	"io"
	"os"
	"strings"
	"unicode"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwlog "github.com/AugmentedFifth/brouwer/core/log"
)

// DefaultMaxDepth bounds the mutual recursion of the grammar
// productions when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Options configures parser behavior.
type Options struct {
	// Logger receives parse-level diagnostics. Defaults to the
	// process-wide logger.
	Logger *brwlog.Logger

	// MaxDepth bounds the recursion depth of the grammar engine.
	// Input that nests deeper fails with CodeLimitExceeded.
	MaxDepth int
}

// Parser parses brouwer source text into the tagged tree defined in
// the ast package. A Parser is reusable but not safe for concurrent
// use; each Parse call runs one complete parse.
type Parser struct {
	cur      *Cursor
	indent   string
	depth    int
	maxDepth int
	logger   *brwlog.Logger
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = brwlog.GetDefault().WithName("parser")
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Parser{
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Parse reads all of r and parses it. On success the returned tree is
// rooted at a Root node holding exactly one Prog. A structurally empty
// source, one without a module declaration, fails with
// CodeEmptyProgram; any grammar violation fails with CodeSyntaxError.
func (p *Parser) Parse(r io.Reader) (*brwast.Node, error) {
	cur, err := NewCursor(r)
	if err != nil {
		return nil, err
	}

	p.cur = cur
	p.indent = ""
	p.depth = 0

	timer := p.logger.StartTimer("parse")
	defer timer.Stop()

	p.logger.Debug("starting parse", brwlog.Fields{
		"source_runes": cur.Len(),
	})

	root, err := p.parse()
	if err != nil {
		p.logger.Debug("parse failed", brwlog.Err(err))

		return nil, err
	}

	p.logger.Debug("parse completed", brwlog.Fields{
		"nodes": root.Count(),
	})

	return root, nil
}

// ParseString parses src.
func (p *Parser) ParseString(src string) (*brwast.Node, error) {
	return p.Parse(strings.NewReader(src))
}

// ParseFile opens and parses the file at path.
func (p *Parser) ParseFile(path string) (*brwast.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, brwerror.Wrap(err, "failed to open source file").
			WithCode(brwerror.CodeIOError).
			WithDetail("path", path)
	}
	defer f.Close()

	p.logger.Debug("parsing source file", brwlog.Fields{
		"path": path,
	})

	return p.Parse(f)
}

// ParseExpr parses src as a single expression instead of a full
// program, for interactive consumers that read one entry at a time.
// Input left over after the expression and its optional trailing
// comment and break is an error.
func (p *Parser) ParseExpr(src string) (*brwast.Node, error) {
	p.cur = NewCursorFromString(src)
	p.indent = ""
	p.depth = 0

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if expr == nil {
		return nil, brwerror.New("source contains no expression").
			WithCode(brwerror.CodeEmptyProgram)
	}

	p.consumeLineComment(false)
	p.expectNewline()

	if !p.cur.AtEnd() {
		return nil, p.syntaxError("expected end of expression")
	}

	return expr, nil
}

// parse runs the top of the grammar: leading whitespace that may only
// consist of line breaks, then exactly one Prog.
func (p *Parser) parse() (*brwast.Node, error) {
	var last rune

	for !p.cur.AtEnd() && unicode.IsSpace(p.cur.Peek()) {
		last = p.cur.Peek()
		p.cur.Advance()
	}

	if last != 0 && !isNewline(last) {
		return nil, p.syntaxError(
			"source must not start with leading whitespace",
		)
	}

	prog, err := p.parseProg()
	if err != nil {
		return nil, err
	}

	if prog == nil {
		return nil, brwerror.New("source contains no program").
			WithCode(brwerror.CodeEmptyProgram)
	}

	root := brwast.NewNode(brwast.Root)
	root.Add(prog)

	return root, nil
}

// parseProg parses a module declaration, then any imports, then
// top-level lines until the input is exhausted. Every top-level item
// must sit at zero indentation.
func (p *Parser) parseProg() (*brwast.Node, error) {
	modDecl, err := p.parseModDecl()
	if err != nil {
		return nil, err
	}

	if modDecl == nil {
		return nil, nil
	}

	prog := brwast.NewNode(brwast.Prog)
	prog.Add(modDecl)

	for !p.cur.AtEnd() {
		if p.indent != "" {
			return nil, p.syntaxError(
				"source must not start with leading whitespace",
			)
		}

		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}

		if imp == nil {
			break
		}

		prog.Add(imp)
	}

	for !p.cur.AtEnd() {
		if p.indent != "" {
			return nil, p.syntaxError(
				"source must not start with leading whitespace",
			)
		}

		line, err := p.parseLine(true)
		if err != nil {
			return nil, err
		}

		if line == nil {
			break
		}

		prog.Add(line)
	}

	return prog, nil
}

// syntaxError builds a positioned syntax error with the given message.
func (p *Parser) syntaxError(msg string) error {
	line, column := p.cur.Position()

	return brwerror.New(msg).
		WithCode(brwerror.CodeSyntaxError).
		WithOperation("parse").
		WithDetail("offset", p.cur.Offset()).
		WithDetail("line", line).
		WithDetail("column", column).
		WithDetail("near", p.cur.Context(24))
}

// enter charges one level against the recursion budget. Productions
// that can recurse into themselves call it on entry, paired with
// leave.
func (p *Parser) enter() error {
	p.depth++

	if p.depth > p.maxDepth {
		return brwerror.New("maximum recursion depth exceeded").
			WithCode(brwerror.CodeLimitExceeded).
			WithDetail("max_depth", p.maxDepth).
			WithDetail("offset", p.cur.Offset())
	}

	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// keywordLeaf consumes kwd as a whole word and returns a leaf of the
// given kind, or nil if the keyword is not next.
func (p *Parser) keywordLeaf(kind brwast.Kind, kwd string) *brwast.Node {
	if !p.cur.ExpectKeyword(kwd) {
		return nil
	}

	return brwast.NewLeaf(kind, kwd)
}

// opLeaf consumes op as a maximal operator match and returns a leaf of
// the given kind, or nil if the operator is not next.
func (p *Parser) opLeaf(kind brwast.Kind, op string) *brwast.Node {
	if !p.cur.ExpectOp(op) {
		return nil
	}

	return brwast.NewLeaf(kind, op)
}

// charLeaf consumes a single character and returns a leaf of the given
// kind, or nil if ch is not next.
func (p *Parser) charLeaf(kind brwast.Kind, ch rune) *brwast.Node {
	if !p.cur.ExpectChar(ch) {
		return nil
	}

	return brwast.NewLeaf(kind, string(ch))
}

// commaList parses ", item" repetitions into parent. A comma with no
// item after it ends the list; the dangling comma is consumed but not
// recorded, which is what makes trailing commas tolerable everywhere
// the grammar uses comma lists.
func (p *Parser) commaList(
	parent *brwast.Node,
	item func() (*brwast.Node, error),
) error {
	for {
		comma := p.charLeaf(brwast.Comma, ',')
		if comma == nil {
			return nil
		}

		node, err := item()
		if err != nil {
			return err
		}

		if node == nil {
			return nil
		}

		parent.Add(comma, node)
		p.cur.SkipBlanks()
	}
}
