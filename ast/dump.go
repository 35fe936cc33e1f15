// File: dump.go
// Title: Parse Tree Dump Printer
// Description: Renders the parse tree as the line-per-node text dump
//              emitted by the CLI, and provides the JSON/YAML
//              serialization shape for the alternative output formats.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial dump printer

package ast

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// Fprint writes the depth-first dump of the subtree rooted at root to w.
// Each node occupies one line: two spaces per depth level, the kind
// name, and, for leaves, a space plus the literal text between double
// quotes. The text is written verbatim, so a stored escape sequence such
// as backslash-n appears as those two characters. Lexemes never contain
// line breaks, which keeps the dump one node per line.
func Fprint(w io.Writer, root *Node) error {
	if root == nil {
		return nil
	}

	bw := bufio.NewWriter(w)
	var werr error
	Inspect(root, func(n *Node, depth int) bool {
		if werr != nil {
			return false
		}
		for i := 0; i < depth; i++ {
			if _, werr = bw.WriteString("  "); werr != nil {
				return false
			}
		}
		if _, werr = bw.WriteString(n.Kind.String()); werr != nil {
			return false
		}
		if n.IsLeaf() {
			if _, werr = bw.WriteString(" \"" + n.Text + "\""); werr != nil {
				return false
			}
		}
		if werr = bw.WriteByte('\n'); werr != nil {
			return false
		}
		return true
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

// Sprint returns the dump of the subtree rooted at root as a string.
func Sprint(root *Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, root)
	return sb.String()
}

// dumpNode is the serialization shape shared by the JSON and YAML output
// formats. Empty text and empty child lists are omitted so leaves and
// interior nodes stay visually distinct.
type dumpNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*dumpNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) dump() *dumpNode {
	if n == nil {
		return nil
	}
	d := &dumpNode{Kind: n.Kind.String(), Text: n.Text}
	if len(n.Children) > 0 {
		d.Children = make([]*dumpNode, 0, len(n.Children))
		for _, child := range n.Children {
			d.Children = append(d.Children, child.dump())
		}
	}
	return d
}

// MarshalJSON renders the subtree as nested objects with "kind", "text",
// and "children" fields, omitting empty ones.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.dump())
}

// MarshalYAML provides the same shape as MarshalJSON for YAML encoders.
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.dump(), nil
}
