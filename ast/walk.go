// File: walk.go
// Title: Parse Tree Traversal
// Description: Implements visitor-based depth-first traversal over the
//              parse tree with pruning, plus small search helpers built
//              on top of it.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial traversal implementation

package ast

// Visitor receives every node of a depth-first, pre-order traversal
// together with its depth below the root (the root itself is depth 0).
// Returning false prunes the subtree: the node's children are skipped.
type Visitor interface {
	Visit(n *Node, depth int) bool
}

// Walk traverses the subtree rooted at n depth-first in pre-order,
// delivering each node to the visitor. A nil root is a no-op.
func Walk(n *Node, v Visitor) {
	walk(n, v, 0)
}

func walk(n *Node, v Visitor, depth int) {
	if n == nil {
		return
	}
	if !v.Visit(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, v, depth+1)
	}
}

// inspector adapts a plain function to the Visitor interface.
type inspector func(*Node, int) bool

func (f inspector) Visit(n *Node, depth int) bool {
	return f(n, depth)
}

// Inspect traverses like Walk but takes a plain function instead of a
// Visitor implementation.
func Inspect(n *Node, fn func(n *Node, depth int) bool) {
	Walk(n, inspector(fn))
}

// FindAll returns every node of the given kind in pre-order.
func FindAll(root *Node, kind Kind) []*Node {
	var found []*Node
	Inspect(root, func(n *Node, _ int) bool {
		if n.Kind == kind {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindFirst returns the first node of the given kind in pre-order, or
// nil when the subtree contains none.
func FindFirst(root *Node, kind Kind) *Node {
	var found *Node
	Inspect(root, func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountKind returns how many nodes of the given kind the subtree
// contains.
func CountKind(root *Node, kind Kind) int {
	count := 0
	Inspect(root, func(n *Node, _ int) bool {
		if n.Kind == kind {
			count++
		}
		return true
	})
	return count
}
