// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "strings"

// WindowID uniquely identifies a window tracked by a layout.
// The empty WindowID means "no window".
type WindowID string

// LayoutNode represents a node in the binary space partitioning tree.
// It can be either:
//   - Leaf node: holds a single window and has no children
//   - Split node: holds no window and has exactly two children (left/top, right/bottom)
//
// Nodes carry no parent pointer; parents are found by search.
type LayoutNode struct {
	WindowID WindowID
	Children []*LayoutNode
}

// NewLeafNode creates a leaf holding the given window.
func NewLeafNode(id WindowID) *LayoutNode {
	return &LayoutNode{WindowID: id}
}

// NewSplitNode creates an internal node with two children.
func NewSplitNode(left, right *LayoutNode) *LayoutNode {
	return &LayoutNode{Children: []*LayoutNode{left, right}}
}

// IsLeaf returns true if this node holds a window and has no children.
func (n *LayoutNode) IsLeaf() bool {
	return n.WindowID != "" && len(n.Children) == 0
}

// IsSplit returns true if this node splits into two children.
func (n *LayoutNode) IsSplit() bool {
	return len(n.Children) == 2 && n.Children[0] != nil && n.Children[1] != nil
}

// Left returns the left/top child in a split node.
func (n *LayoutNode) Left() *LayoutNode {
	if len(n.Children) > 0 {
		return n.Children[0]
	}
	return nil
}

// Right returns the right/bottom child in a split node.
func (n *LayoutNode) Right() *LayoutNode {
	if len(n.Children) > 1 {
		return n.Children[1]
	}
	return nil
}

// Walk traverses the tree in pre-order, left before right.
// Returns early if fn returns false.
func (n *LayoutNode) Walk(fn func(*LayoutNode) bool) {
	n.walk(fn)
}

func (n *LayoutNode) walk(fn func(*LayoutNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// LeafIDs returns the window ids of all leaves, left to right.
func (n *LayoutNode) LeafIDs() []WindowID {
	var ids []WindowID
	n.Walk(func(node *LayoutNode) bool {
		if node.IsLeaf() {
			ids = append(ids, node.WindowID)
		}
		return true
	})
	return ids
}

// LeafCount returns the number of leaf nodes (windows) in the tree.
func (n *LayoutNode) LeafCount() int {
	count := 0
	n.Walk(func(node *LayoutNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of levels in the tree. A lone leaf has depth 1.
func (n *LayoutNode) Depth() int {
	if n == nil {
		return 0
	}
	depth := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > depth {
			depth = d
		}
	}
	return depth + 1
}

// Equal reports whether two trees have the same shape and the same
// window at every leaf position.
func (n *LayoutNode) Equal(other *LayoutNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.WindowID != other.WindowID || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree as a compact s-expression, e.g. "(a (b c))".
func (n *LayoutNode) String() string {
	if n == nil {
		return "()"
	}
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *LayoutNode) writeTo(sb *strings.Builder) {
	if len(n.Children) == 0 {
		sb.WriteString(string(n.WindowID))
		return
	}
	sb.WriteByte('(')
	for i, child := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if child == nil {
			sb.WriteString("()")
			continue
		}
		child.writeTo(sb)
	}
	sb.WriteByte(')')
}
