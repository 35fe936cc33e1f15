// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the brouwer syntactic front
//              end.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial package documentation

// Package parser implements the syntactic front end for brouwer
// source text: a scanner-less recursive descent parser that reads
// characters directly and produces the uniform tagged tree defined in
// the ast package.
//
// The package is organized around three cooperating layers:
//
//   - The character Cursor, a backtracking reader over fully decoded
//     source. Productions speculate freely by saving an offset with
//     Mark and restoring it with ResetTo; a restored cursor is
//     indistinguishable from one that never advanced.
//
//   - The layout engine, which implements the indentation rule: block
//     bodies are delimited purely by a deeper, textually consistent
//     run of leading blanks. It records the current indentation as a
//     literal string so consistency is a prefix check, never a column
//     count.
//
//   - The grammar productions, one method per nonterminal. Each
//     returns a node on success, nil when its first distinguishing
//     token is absent (leaving the cursor untouched), or an error when
//     a committed form is missing a required continuation. Hard errors
//     propagate to the top of the parse; there is no recovery.
//
// Typical use:
//
//	p := parser.New(parser.Options{})
//	root, err := p.ParseFile("main.brw")
//	if err != nil {
//	    ...
//	}
//	ast.Fprint(os.Stdout, root)
//
// A Parser is reusable but not safe for concurrent use; each call to
// Parse, ParseString, or ParseFile runs one complete parse over one
// input.
package parser
