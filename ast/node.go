// File: node.go
// Title: Parse Tree Node
// Description: Defines the uniform tagged tree node produced by the
//              parser, with construction helpers, deep copy, and
//              structural validation.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial node implementation

package ast

import "fmt"

// Node is one vertex of the parse tree. A node is a leaf when Text is
// non-empty: the literal source fragment it captured (an identifier, a
// digit run, a keyword, a punctuation mark). Interior nodes carry only
// structure; their Text is empty and their meaning lives in Kind and
// the ordered child list. An interior node with zero children is legal
// (a Line holding neither expression nor comment produces one).
type Node struct {
	Kind     Kind    // Grammar symbol this node represents
	Text     string  // Literal payload; non-empty marks a leaf
	Children []*Node // Ordered children, interior nodes only
}

// NewNode creates an interior node of the given kind with no children.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewLeaf creates a leaf node holding the given literal text.
func NewLeaf(kind Kind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// Add appends children in order. Nil children are skipped so callers can
// pass optional parts without guarding.
func (n *Node) Add(children ...*Node) {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
}

// IsLeaf returns true if the node carries literal text.
func (n *Node) IsLeaf() bool {
	return n.Text != ""
}

// Count returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Clone returns a deep copy of the subtree rooted at n. The copy shares
// no structure with the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{Kind: n.Kind, Text: n.Text}
	if len(n.Children) > 0 {
		clone.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			clone.Children = append(clone.Children, child.Clone())
		}
	}
	return clone
}

// Validate checks the structural invariants of the subtree rooted at n:
// every kind must be a defined grammar symbol, and a node with literal
// text must not carry children.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if !n.Kind.IsValid() {
		return fmt.Errorf("invalid kind %d", int(n.Kind))
	}
	if n.Text != "" && len(n.Children) > 0 {
		return fmt.Errorf("%s: leaf with %d children", n.Kind, len(n.Children))
	}
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%s: child %d is nil", n.Kind, i)
		}
		if err := child.Validate(); err != nil {
			return fmt.Errorf("%s child %d: %w", n.Kind, i, err)
		}
	}
	return nil
}

// String returns a compact one-line description of the node itself,
// without children. Intended for log fields and test failure messages;
// use Sprint for the full tree.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%s %q", n.Kind, n.Text)
	}
	return fmt.Sprintf("%s (%d children)", n.Kind, len(n.Children))
}
