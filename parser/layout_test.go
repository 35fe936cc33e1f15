// File: layout_test.go
// Title: Layout Engine Tests
// Description: Tests for newline/indentation tracking, block body
//              collection, block item dispatch, and line comment
//              consumption.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial layout engine tests

package parser

import (
	"testing"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
)

func TestExpectNewline(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		ok     bool
		indent string
		offset int
	}{
		{"newline then indent", "\n  x", true, "  ", 3},
		{"no break", "x", false, "", 0},
		// Leading blanks are consumed even when no break follows.
		{"blanks only", "  x", false, "", 2},
		{"carriage return", "\r\nx", true, "", 2},
		{"reindent after second break", "\n  \n    x", true, "    ", 8},
		{"later break resets indent", "\n  \nx", true, "", 4},
		{"break at end of input", "\n", true, "", 1},
		{"tab indent", "\n\t x", true, "\t ", 3},
		{"multiple breaks", "\n\n\nx", true, "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := primedParser(tt.src)

			if ok := p.expectNewline(); ok != tt.ok {
				t.Fatalf("expectNewline(%q) = %v, want %v", tt.src, ok, tt.ok)
			}
			if p.indent != tt.indent {
				t.Errorf("indent = %q, want %q", p.indent, tt.indent)
			}
			if p.cur.Offset() != tt.offset {
				t.Errorf("offset = %d, want %d", p.cur.Offset(), tt.offset)
			}
		})
	}

	t.Run("failure keeps recorded indent", func(t *testing.T) {
		p := primedParser("x")
		p.indent = "  "

		if p.expectNewline() {
			t.Fatal("expectNewline succeeded without a break")
		}
		if p.indent != "  " {
			t.Errorf("indent = %q, want %q", p.indent, "  ")
		}
	})
}

func TestGetBlock(t *testing.T) {
	t.Run("two items", func(t *testing.T) {
		p := primedParser("\n  a\n  b\n")
		parent := brwast.NewNode(brwast.Case)

		ret, err := p.getBlock(parent, brwast.Line)
		if err != nil {
			t.Fatalf("getBlock failed: %v", err)
		}
		if ret != "" {
			t.Errorf("header indent = %q, want \"\"", ret)
		}

		if len(parent.Children) != 2 {
			t.Fatalf("items = %d, want 2", len(parent.Children))
		}
		for i, item := range parent.Children {
			if item.Kind != brwast.Line {
				t.Errorf("item %d kind = %v, want Line", i, item.Kind)
			}
		}

		// The trailing break clears the recorded indentation.
		if p.indent != "" {
			t.Errorf("indent = %q after block", p.indent)
		}
	})

	t.Run("stops at dedent", func(t *testing.T) {
		p := primedParser("\n  a\nelse")
		parent := brwast.NewNode(brwast.IfElse)

		ret, err := p.getBlock(parent, brwast.Line)
		if err != nil {
			t.Fatalf("getBlock failed: %v", err)
		}
		if ret != "" {
			t.Errorf("header indent = %q, want \"\"", ret)
		}

		if len(parent.Children) != 1 {
			t.Fatalf("items = %d, want 1", len(parent.Children))
		}

		// The dedented text stays for the caller to inspect.
		if p.cur.Offset() != len("\n  a\n") {
			t.Errorf("offset = %d, want %d", p.cur.Offset(), len("\n  a\n"))
		}
		if p.indent != "" {
			t.Errorf("indent = %q at dedent", p.indent)
		}
	})

	t.Run("nested block extends header indent", func(t *testing.T) {
		p := primedParser("\n    a\n")
		p.indent = "  "
		parent := brwast.NewNode(brwast.While)

		ret, err := p.getBlock(parent, brwast.Line)
		if err != nil {
			t.Fatalf("getBlock failed: %v", err)
		}
		if ret != "  " {
			t.Errorf("header indent = %q, want %q", ret, "  ")
		}
		if len(parent.Children) != 1 {
			t.Fatalf("items = %d, want 1", len(parent.Children))
		}
	})
}

func TestGetBlockErrors(t *testing.T) {
	tests := []struct {
		name   string
		indent string
		src    string
		kind   brwast.Kind
		want   string
	}{
		{
			"missing newline after header",
			"", "x", brwast.Line,
			"expected newline after header",
		},
		{
			"body at header depth",
			"", "\na", brwast.Line,
			"improper indentation after header",
		},
		{
			"body shallower than header",
			"  ", "\na", brwast.Line,
			"improper indentation after header",
		},
		{
			"body indent not extending header",
			"  ", "\n\t\t\ta", brwast.Line,
			"improper indentation after header",
		},
		{
			"input ends after first item",
			"", "\n  a", brwast.Line,
			"expected newline after first item of block",
		},
		{
			"input ends after later item",
			"", "\n  a\n  b", brwast.Line,
			"expected newline after block item",
		},
		{
			"first item fails to parse",
			"", "\n  +\n", brwast.CaseBranch,
			"expected at least one item in block",
		},
		{
			"later item fails to parse",
			"", "\n  x=> 1\n  +\n", brwast.CaseBranch,
			"expected item in block",
		},
		{
			"item error propagates",
			"", "\n  a :: b\n", brwast.Line,
			"the operator :: is reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := primedParser(tt.src)
			p.indent = tt.indent
			parent := brwast.NewNode(brwast.Case)

			_, err := p.getBlock(parent, tt.kind)
			if err == nil || err.Error() != tt.want {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestParseBlockItemUnhandled(t *testing.T) {
	node, err := primedParser("x").parseBlockItem(brwast.Expr)
	if node != nil {
		t.Fatalf("parseBlockItem = %v, want nil", node)
	}
	if err == nil || err.Error() != "unhandled body item type" {
		t.Fatalf("error = %v", err)
	}
	if !brwerror.HasCode(err, brwerror.CodeInternal) {
		t.Errorf("code = %v, want %v",
			brwerror.GetCode(err), brwerror.CodeInternal)
	}
}
