// File: parser_test.go
// Title: Parser Tests
// Description: End-to-end parse tests: tree shapes for the statement
//              forms, the syntax error catalog, recursion and indent
//              handling, and parser engine behavior.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial parser tests

package parser

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwlog "github.com/AugmentedFifth/brouwer/core/log"
)

func quietLogger() *brwlog.Logger {
	return brwlog.NewWithConfig(brwlog.Config{
		Level:  brwlog.LevelError,
		Output: io.Discard,
	})
}

func newTestParser() *Parser {
	return New(Options{Logger: quietLogger()})
}

// primedParser returns a parser whose cursor is positioned over src,
// for driving individual productions directly.
func primedParser(src string) *Parser {
	p := newTestParser()
	p.cur = NewCursorFromString(src)

	return p
}

func n(kind brwast.Kind, children ...*brwast.Node) *brwast.Node {
	node := brwast.NewNode(kind)
	node.Add(children...)

	return node
}

func l(kind brwast.Kind, text string) *brwast.Node {
	return brwast.NewLeaf(kind, text)
}

// progLine wraps a single subexpression in the Root/Prog envelope of a
// one-line program headed by "module Main".
func progLine(sub *brwast.Node) *brwast.Node {
	return n(brwast.Root, n(brwast.Prog,
		n(brwast.ModDecl,
			l(brwast.ModuleKeyword, "module"),
			l(brwast.Ident, "Main"),
		),
		n(brwast.Line, n(brwast.Expr, n(brwast.Subexpr, sub))),
	))
}

func exprOf(subs ...*brwast.Node) *brwast.Node {
	e := brwast.NewNode(brwast.Expr)
	for _, sub := range subs {
		e.Add(n(brwast.Subexpr, sub))
	}

	return e
}

func lineOf(subs ...*brwast.Node) *brwast.Node {
	return n(brwast.Line, exprOf(subs...))
}

func qual(name string) *brwast.Node {
	return n(brwast.QualIdent, l(brwast.Ident, name))
}

func patIdent(name string) *brwast.Node {
	return n(brwast.Pattern, l(brwast.Ident, name))
}

func intLit(digits string) *brwast.Node {
	return n(brwast.NumLit, n(brwast.IntLit, l(brwast.AbsInt, digits)))
}

func assignTo(name string, rhs ...*brwast.Node) *brwast.Node {
	return n(brwast.Assign,
		patIdent(name),
		l(brwast.Equals, "="),
		exprOf(rhs...),
	)
}

func assertParse(t *testing.T, src string, want *brwast.Node) {
	t.Helper()

	root, err := newTestParser().ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q) failed: %v", src, err)
	}

	got, expected := brwast.Sprint(root), brwast.Sprint(want)
	if got != expected {
		t.Errorf("ParseString(%q) =\n%swant:\n%s", src, got, expected)
	}
}

func parseFail(t *testing.T, src string) error {
	t.Helper()

	root, err := newTestParser().ParseString(src)
	if err == nil {
		t.Fatalf("ParseString(%q) succeeded:\n%s", src, brwast.Sprint(root))
	}

	return err
}

func TestParseSimpleAssignment(t *testing.T) {
	assertParse(t, "module Main\nx = 1\n",
		progLine(assignTo("x", intLit("1"))))
}

func TestParseDumpFormat(t *testing.T) {
	root, err := newTestParser().ParseString("module Main\nx = 1\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	want := strings.Join([]string{
		"Root",
		"  Prog",
		"    ModDecl",
		`      ModuleKeyword "module"`,
		`      Ident "Main"`,
		"    Line",
		"      Expr",
		"        Subexpr",
		"          Assign",
		"            Pattern",
		`              Ident "x"`,
		`            Equals "="`,
		"            Expr",
		"              Subexpr",
		"                NumLit",
		"                  IntLit",
		`                    AbsInt "1"`,
		"",
	}, "\n")

	if got := brwast.Sprint(root); got != want {
		t.Errorf("dump =\n%swant:\n%s", got, want)
	}
}

func TestParseFnDecl(t *testing.T) {
	assertParse(t, "module Main\nfn f (x: Int) -> Int\n  return x\n",
		progLine(n(brwast.FnDecl,
			l(brwast.FnKeyword, "fn"),
			l(brwast.Ident, "f"),
			n(brwast.Param,
				l(brwast.LParen, "("),
				patIdent("x"),
				l(brwast.Colon, ":"),
				n(brwast.TypeIdent,
					n(brwast.NamespacedIdent, l(brwast.Ident, "Int")),
				),
				l(brwast.RParen, ")"),
			),
			l(brwast.RArrow, "->"),
			qual("Int"),
			lineOf(n(brwast.Return,
				l(brwast.ReturnKeyword, "return"),
				exprOf(qual("x")),
			)),
		)))
}

func TestParseFnDeclBareParams(t *testing.T) {
	assertParse(t, "module Main\nfn add a b\n  a\n",
		progLine(n(brwast.FnDecl,
			l(brwast.FnKeyword, "fn"),
			l(brwast.Ident, "add"),
			n(brwast.Param, patIdent("a")),
			n(brwast.Param, patIdent("b")),
			lineOf(qual("a")),
		)))
}

func TestParseIfElse(t *testing.T) {
	assertParse(t, "module Main\nif x\n  1\nelse\n  2\n",
		progLine(n(brwast.IfElse,
			l(brwast.IfKeyword, "if"),
			exprOf(qual("x")),
			lineOf(intLit("1")),
			l(brwast.ElseKeyword, "else"),
			lineOf(intLit("2")),
		)))
}

func TestParseIfWithoutElse(t *testing.T) {
	assertParse(t, "module Main\nif x\n  1\n",
		progLine(n(brwast.IfElse,
			l(brwast.IfKeyword, "if"),
			exprOf(qual("x")),
			lineOf(intLit("1")),
		)))
}

func TestParseElseIfChain(t *testing.T) {
	assertParse(t, "module Main\nif a\n  1\nelse if b\n  2\nelse\n  3\n",
		progLine(n(brwast.IfElse,
			l(brwast.IfKeyword, "if"),
			exprOf(qual("a")),
			lineOf(intLit("1")),
			l(brwast.ElseKeyword, "else"),
			n(brwast.IfElse,
				l(brwast.IfKeyword, "if"),
				exprOf(qual("b")),
				lineOf(intLit("2")),
				l(brwast.ElseKeyword, "else"),
				lineOf(intLit("3")),
			),
		)))
}

func TestParseVar(t *testing.T) {
	assertParse(t, "module Main\nvar x = 1\n",
		progLine(n(brwast.Var,
			l(brwast.VarKeyword, "var"),
			patIdent("x"),
			l(brwast.Equals, "="),
			exprOf(intLit("1")),
		)))
}

func TestParseVarTyped(t *testing.T) {
	// The equals must directly follow the type annotation; see the
	// error catalog for the spaced form.
	assertParse(t, "module Main\nvar x: Int= 1\n",
		progLine(n(brwast.Var,
			l(brwast.VarKeyword, "var"),
			patIdent("x"),
			l(brwast.Colon, ":"),
			n(brwast.TypeIdent,
				n(brwast.NamespacedIdent, l(brwast.Ident, "Int")),
			),
			l(brwast.Equals, "="),
			exprOf(intLit("1")),
		)))
}

func TestParseAssignTyped(t *testing.T) {
	assertParse(t, "module Main\nx: Int = 1\n",
		progLine(n(brwast.Assign,
			patIdent("x"),
			l(brwast.Colon, ":"),
			n(brwast.TypeIdent,
				n(brwast.NamespacedIdent, l(brwast.Ident, "Int")),
			),
			l(brwast.Equals, "="),
			exprOf(intLit("1")),
		)))
}

func TestParseCase(t *testing.T) {
	assertParse(t, "module Main\ncase x\n  1=> a\n  _=> b\n",
		progLine(n(brwast.Case,
			l(brwast.CaseKeyword, "case"),
			exprOf(qual("x")),
			n(brwast.CaseBranch,
				n(brwast.Pattern, intLit("1")),
				l(brwast.FatRArrow, "=>"),
				lineOf(qual("a")),
			),
			n(brwast.CaseBranch,
				n(brwast.Pattern, l(brwast.Underscore, "_")),
				l(brwast.FatRArrow, "=>"),
				lineOf(qual("b")),
			),
		)))
}

func TestParseTry(t *testing.T) {
	assertParse(t, "module Main\ntry\n  a\ncatch e\n  b\n",
		progLine(n(brwast.Try,
			l(brwast.TryKeyword, "try"),
			lineOf(qual("a")),
			l(brwast.CatchKeyword, "catch"),
			l(brwast.Ident, "e"),
			lineOf(qual("b")),
		)))
}

func TestParseWhile(t *testing.T) {
	assertParse(t, "module Main\nwhile x\n  y\n",
		progLine(n(brwast.While,
			l(brwast.WhileKeyword, "while"),
			exprOf(qual("x")),
			lineOf(qual("y")),
		)))
}

func TestParseFor(t *testing.T) {
	assertParse(t, "module Main\nfor x in xs\n  x\n",
		progLine(n(brwast.For,
			l(brwast.ForKeyword, "for"),
			patIdent("x"),
			l(brwast.InKeyword, "in"),
			exprOf(qual("xs")),
			lineOf(qual("x")),
		)))
}

func TestParseLambda(t *testing.T) {
	assertParse(t, "module Main\nf = \\x -> x\n",
		progLine(assignTo("f", n(brwast.Lambda,
			l(brwast.Backslash, "\\"),
			n(brwast.Param, patIdent("x")),
			l(brwast.RArrow, "->"),
			exprOf(qual("x")),
		))))
}

func TestParseLambdaMultiParam(t *testing.T) {
	assertParse(t, "module Main\nf = \\x, y -> x\n",
		progLine(assignTo("f", n(brwast.Lambda,
			l(brwast.Backslash, "\\"),
			n(brwast.Param, patIdent("x")),
			l(brwast.Comma, ","),
			n(brwast.Param, patIdent("y")),
			l(brwast.RArrow, "->"),
			exprOf(qual("x")),
		))))
}

func TestParseModuleExposing(t *testing.T) {
	assertParse(t, "module Main exposing a, b\nx = 1\n",
		n(brwast.Root, n(brwast.Prog,
			n(brwast.ModDecl,
				l(brwast.ModuleKeyword, "module"),
				l(brwast.Ident, "Main"),
				l(brwast.ExposingKeyword, "exposing"),
				l(brwast.Ident, "a"),
				l(brwast.Comma, ","),
				l(brwast.Ident, "b"),
			),
			n(brwast.Line, exprOf(assignTo("x", intLit("1")))),
		)))
}

func TestParseImports(t *testing.T) {
	assertParse(t, "module Main\nimport foo as f\nimport bar (a, b)\nimport baz hiding (c)\nx = 1\n",
		n(brwast.Root, n(brwast.Prog,
			n(brwast.ModDecl,
				l(brwast.ModuleKeyword, "module"),
				l(brwast.Ident, "Main"),
			),
			n(brwast.Import,
				l(brwast.ImportKeyword, "import"),
				l(brwast.Ident, "foo"),
				l(brwast.AsKeyword, "as"),
				l(brwast.Ident, "f"),
			),
			n(brwast.Import,
				l(brwast.ImportKeyword, "import"),
				l(brwast.Ident, "bar"),
				l(brwast.LParen, "("),
				l(brwast.Ident, "a"),
				l(brwast.Comma, ","),
				l(brwast.Ident, "b"),
				l(brwast.RParen, ")"),
			),
			n(brwast.Import,
				l(brwast.ImportKeyword, "import"),
				l(brwast.Ident, "baz"),
				l(brwast.HidingKeyword, "hiding"),
				l(brwast.LParen, "("),
				l(brwast.Ident, "c"),
				l(brwast.RParen, ")"),
			),
			n(brwast.Line, exprOf(assignTo("x", intLit("1")))),
		)))
}

func TestParseOperatorJuxtaposition(t *testing.T) {
	assertParse(t, "module Main\nx = a + b\n",
		progLine(assignTo("x",
			qual("a"),
			l(brwast.Op, "+"),
			qual("b"),
		)))
}

func TestParseInfixed(t *testing.T) {
	assertParse(t, "module Main\nx = a `plus` b\n",
		progLine(assignTo("x",
			qual("a"),
			n(brwast.Infixed,
				l(brwast.Backtick, "`"),
				qual("plus"),
				l(brwast.Backtick, "`"),
			),
			qual("b"),
		)))
}

func TestParseMemberAndScoped(t *testing.T) {
	assertParse(t, "module Main\nx = a.b\n",
		progLine(assignTo("x",
			n(brwast.QualIdent, n(brwast.MemberIdent,
				l(brwast.Ident, "a"),
				l(brwast.Dot, "."),
				l(brwast.Ident, "b"),
			)),
		)))

	assertParse(t, "module Main\nx = M::b\n",
		progLine(assignTo("x",
			n(brwast.QualIdent, n(brwast.ScopedIdent,
				l(brwast.Ident, "M"),
				l(brwast.DoubleColon, "::"),
				l(brwast.Ident, "b"),
			)),
		)))
}

// Statements that follow a dedented block continue the enclosing line,
// so they accumulate as further subexpressions of the same Expr.
func TestParseBlockGlue(t *testing.T) {
	assertParse(t, "module Main\nif x\n  1\ny\n",
		n(brwast.Root, n(brwast.Prog,
			n(brwast.ModDecl,
				l(brwast.ModuleKeyword, "module"),
				l(brwast.Ident, "Main"),
			),
			n(brwast.Line, exprOf(
				n(brwast.IfElse,
					l(brwast.IfKeyword, "if"),
					exprOf(qual("x")),
					lineOf(intLit("1")),
				),
				qual("y"),
			)),
		)))
}

func TestParseEOFWithoutTrailingNewline(t *testing.T) {
	assertParse(t, "module Main\nx = 1",
		progLine(assignTo("x", intLit("1"))))
}

func TestParseLeadingNewlinesAllowed(t *testing.T) {
	assertParse(t, "\n\nmodule Main\nx = 1\n",
		progLine(assignTo("x", intLit("1"))))
}

func TestParseBlankLinesBetweenStatements(t *testing.T) {
	assertParse(t, "module Main\n\nx = 1\n   \ny = 2\n",
		n(brwast.Root, n(brwast.Prog,
			n(brwast.ModDecl,
				l(brwast.ModuleKeyword, "module"),
				l(brwast.Ident, "Main"),
			),
			n(brwast.Line, exprOf(assignTo("x", intLit("1")))),
			n(brwast.Line, exprOf(assignTo("y", intLit("2")))),
		)))
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"leading whitespace",
			"  module Main\n",
			"source must not start with leading whitespace",
		},
		{
			"indented top-level line",
			"module Main\n  x = 1\n",
			"source must not start with leading whitespace",
		},
		{
			"module name missing",
			"module\n",
			"expected name of module to be plain identifier",
		},
		{
			"empty exposing list",
			"module Main exposing\n",
			"expected at least one item in module export/hide list",
		},
		{
			"module at EOF",
			"module Main",
			"expected newline after module declaration",
		},
		{
			"import name missing",
			"module Main\nimport\n",
			"expected module name after import keyword",
		},
		{
			"import alias missing",
			"module Main\nimport x as\n",
			"expected namespace alias after as keyword",
		},
		{
			"import list missing",
			"module Main\nimport x\n",
			"expected left paren to start import list",
		},
		{
			"import list empty",
			"module Main\nimport x ()\n",
			"expected at least one import item in import list",
		},
		{
			"import list unterminated",
			"module Main\nimport x (a\n",
			"expected right paren to terminate import list",
		},
		{
			"import at EOF",
			"module Main\nimport x (a)",
			"expected newline after import statement",
		},
		{
			"var pattern missing",
			"module Main\nvar = 1\n",
			"left-hand side of var assignment must be a pattern",
		},
		{
			"var type missing",
			"module Main\nvar x: = 1\n",
			"type of var binding must be a valid type identifier",
		},
		{
			"var equals after spaced type",
			"module Main\nvar x: Int = 1\n",
			"var assignment must use =",
		},
		{
			"var value missing",
			"module Main\nvar x = \n",
			"right-hand side of var assignment must be a valid expression",
		},
		{
			"assign type missing",
			"module Main\nx: = 1\n",
			"type of binding must be a valid identifier",
		},
		{
			"assign value missing",
			"module Main\nx = \n",
			"right-hand side of assignment must be a valid expression",
		},
		{
			"fn name missing",
			"module Main\nfn\n",
			"expected function name",
		},
		{
			"fn return type missing",
			"module Main\nfn f -> \n",
			"expected type after arrow",
		},
		{
			"fn body not indented",
			"module Main\nfn f\nx = 1\n",
			"improper indentation after header",
		},
		{
			"fn body missing",
			"module Main\nfn f",
			"expected newline after header",
		},
		{
			"case subject missing",
			"module Main\ncase\n",
			"expected subject expression for case",
		},
		{
			"case branch spaced arrow",
			"module Main\ncase x\n  1 => a\n",
			"expected => while parsing case branch",
		},
		{
			"if condition missing",
			"module Main\nif\n",
			"expected expression as if condition",
		},
		{
			"try catch dedented",
			"module Main\nfn f\n  try\n    a\n",
			"try must have corresponsing catch on same indent level",
		},
		{
			"try catch missing",
			"module Main\ntry\n  a\n",
			"try must have corresponding catch",
		},
		{
			"catch exception missing",
			"module Main\ntry\n  a\ncatch\n  b\n",
			"catch must name the caught exception",
		},
		{
			"while condition missing",
			"module Main\nwhile\n",
			"expected expression as while condition",
		},
		{
			"for pattern missing",
			"module Main\nfor\n",
			"expected pattern as first part of for header",
		},
		{
			"for in missing",
			"module Main\nfor x\n",
			"missing in keyword of for loop",
		},
		{
			"for iterable missing",
			"module Main\nfor x in\n",
			"for must iterate over an expression",
		},
		{
			"lambda params missing",
			"module Main\nx = \\\n",
			"lambda expression requires 1+ args",
		},
		{
			"lambda arrow missing",
			"module Main\nx = \\y\n",
			"lambda expression requires ->",
		},
		{
			"lambda body missing",
			"module Main\nx = \\y -> \n",
			"lambda body must be expression",
		},
		{
			"reserved arrow",
			"module Main\n->\n",
			"the operator -> is reserved",
		},
		{
			"reserved double dash",
			"module Main\nx = 1 -- c\n",
			"the operator -- is reserved",
		},
		{
			"reserved bar",
			"module Main\nx = a | b\n",
			"the operator | is reserved",
		},
		{
			"reserved double colon",
			"module Main\nx = a :: b\n",
			"the operator :: is reserved",
		},
		{
			"reserved equals",
			"module Main\nx = a == b\n",
			"the operator = is reserved",
		},
		{
			"reserved colon",
			"module Main\nx = a : b\n",
			"the operator : is reserved",
		},
		{
			"member ident incomplete",
			"module Main\nx = a.\n",
			"expected identifier after dot operator",
		},
		{
			"scoped ident incomplete",
			"module Main\nx = a::\n",
			"expected identifier after dot operator",
		},
		{
			"unexpected closing paren",
			"module Main\nx = 1 )\n",
			"expected newline after line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseFail(t, tt.src)
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
			if !brwerror.HasCode(err, brwerror.CodeSyntaxError) {
				t.Errorf("code = %v, want %v",
					brwerror.GetCode(err), brwerror.CodeSyntaxError)
			}
		})
	}
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "\n\n", "x = 1\n"} {
		err := parseFail(t, src)
		if err.Error() != "source contains no program" {
			t.Errorf("ParseString(%q) error = %q", src, err.Error())
		}
		if !brwerror.HasCode(err, brwerror.CodeEmptyProgram) {
			t.Errorf("ParseString(%q) code = %v", src, brwerror.GetCode(err))
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	p := New(Options{Logger: quietLogger(), MaxDepth: 8})

	_, err := p.ParseString("module Main\nx = ((((((((((1))))))))))\n")
	if err == nil {
		t.Fatal("deeply nested parse succeeded")
	}
	if err.Error() != "maximum recursion depth exceeded" {
		t.Errorf("error = %q", err.Error())
	}
	if !brwerror.HasCode(err, brwerror.CodeLimitExceeded) {
		t.Errorf("code = %v", brwerror.GetCode(err))
	}
}

func TestParseDepthLimitDefault(t *testing.T) {
	// A modest nesting depth parses fine under the default budget.
	src := "module Main\nx = " +
		strings.Repeat("[", 50) + "1" + strings.Repeat("]", 50) + "\n"

	if _, err := newTestParser().ParseString(src); err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
}

func TestParseSyntaxErrorDetails(t *testing.T) {
	err := parseFail(t, "module Main\nx = \n")

	brwErr, ok := err.(*brwerror.Error)
	if !ok {
		t.Fatalf("error type = %T", err)
	}

	details := brwErr.Details()
	if details["line"] != 2 {
		t.Errorf("line = %v, want 2", details["line"])
	}
	if _, present := details["offset"]; !present {
		t.Error("offset detail missing")
	}
	if _, present := details["near"]; !present {
		t.Error("near detail missing")
	}
	if brwErr.Operation() != "parse" {
		t.Errorf("operation = %q", brwErr.Operation())
	}
}

func TestParserReuse(t *testing.T) {
	p := newTestParser()

	if _, err := p.ParseString("module Main\nx = \n"); err == nil {
		t.Fatal("first parse succeeded")
	}

	root, err := p.ParseString("module Main\nx = 1\n")
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if root.Kind != brwast.Root {
		t.Errorf("root kind = %v", root.Kind)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.brw")
	if err := os.WriteFile(path, []byte("module Main\nx = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := newTestParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if want := progLine(assignTo("x", intLit("1"))); brwast.Sprint(root) != brwast.Sprint(want) {
		t.Errorf("tree =\n%s", brwast.Sprint(root))
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := newTestParser().ParseFile(
		filepath.Join(t.TempDir(), "nope.brw"))
	if err == nil {
		t.Fatal("ParseFile succeeded on missing file")
	}
	if !strings.HasPrefix(err.Error(), "failed to open source file") {
		t.Errorf("error = %q", err.Error())
	}
	if !brwerror.HasCode(err, brwerror.CodeIOError) {
		t.Errorf("code = %v", brwerror.GetCode(err))
	}
}

func TestConsumeLineComment(t *testing.T) {
	p := primedParser("-- note\nnext")
	if !p.consumeLineComment(false) {
		t.Fatal("comment not consumed")
	}
	if p.cur.Peek() != '\n' {
		t.Errorf("cursor at %q, want newline", p.cur.Peek())
	}

	p = primedParser("-- note\nnext")
	if !p.consumeLineComment(true) {
		t.Fatal("comment not consumed")
	}
	if p.cur.Peek() != 'n' {
		t.Errorf("cursor at %q, want 'n'", p.cur.Peek())
	}

	p = primedParser("-> x")
	if p.consumeLineComment(false) {
		t.Error("arrow consumed as comment")
	}
	if p.cur.Offset() != 0 {
		t.Errorf("offset = %d after failed match", p.cur.Offset())
	}

	// A longer operator run does not start a comment.
	p = primedParser("-->")
	if p.consumeLineComment(false) {
		t.Error("--> consumed as comment")
	}
	if p.cur.Offset() != 0 {
		t.Errorf("offset = %d after failed match", p.cur.Offset())
	}
}

func TestParseExpr(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		expr, err := newTestParser().ParseExpr("1 + 2")
		if err != nil {
			t.Fatalf("ParseExpr failed: %v", err)
		}

		want := exprOf(intLit("1"), l(brwast.Op, "+"), intLit("2"))
		if got, expected := brwast.Sprint(expr), brwast.Sprint(want); got != expected {
			t.Errorf("ParseExpr =\n%swant:\n%s", got, expected)
		}
	})

	t.Run("block construct", func(t *testing.T) {
		expr, err := newTestParser().ParseExpr("case x\n  1=> 2\n")
		if err != nil {
			t.Fatalf("ParseExpr failed: %v", err)
		}

		want := exprOf(n(brwast.Case,
			l(brwast.CaseKeyword, "case"),
			exprOf(qual("x")),
			n(brwast.CaseBranch,
				n(brwast.Pattern, intLit("1")),
				l(brwast.FatRArrow, "=>"),
				lineOf(intLit("2")),
			),
		))
		if got, expected := brwast.Sprint(expr), brwast.Sprint(want); got != expected {
			t.Errorf("ParseExpr =\n%swant:\n%s", got, expected)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := newTestParser().ParseExpr("")
		if err == nil || err.Error() != "source contains no expression" {
			t.Fatalf("error = %v", err)
		}
		if !brwerror.HasCode(err, brwerror.CodeEmptyProgram) {
			t.Errorf("code = %v", brwerror.GetCode(err))
		}
	})

	t.Run("trailing text", func(t *testing.T) {
		_, err := newTestParser().ParseExpr("a .")
		if err == nil || err.Error() != "expected end of expression" {
			t.Fatalf("error = %v", err)
		}
	})

	t.Run("incomplete block fails at end of input", func(t *testing.T) {
		_, err := newTestParser().ParseExpr("case x")
		if err == nil || err.Error() != "expected newline after header" {
			t.Fatalf("error = %v", err)
		}
	})
}
