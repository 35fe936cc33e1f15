// File: doc.go
// Title: Brouwer AST Package Documentation
// Description: Defines the tagged parse tree produced by the brouwer
//              parser. Provides node construction, traversal, and the
//              depth-first dump printer used by the CLI.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial AST implementation

/*
Package ast defines the parse tree structures for brouwer source files.

Unlike ASTs that dedicate a struct type to every grammar construct, the
brouwer tree is uniform: every vertex is a *Node carrying a Kind tag, an
optional literal text payload, and an ordered child list. Leaves hold the
text (identifiers, digits, keywords, punctuation); interior nodes hold
structure. The parser builds the tree bottom-up and never mutates it
afterwards.

The package provides:
  • Kind constants for every grammar symbol
  • Node construction and validation helpers
  • Visitor-based depth-first traversal
  • The line-per-node dump printer plus JSON/YAML serialization
*/
package ast
