// Package bsp implements binary space partitioning over layout trees:
// locating leaves, splitting and appending windows, rebuilding a tree
// from an ordered window list, and deriving frames from a tree.
package bsp

import (
	"errors"
	"fmt"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// ErrTargetNotFound is returned when a split target has no leaf in the tree.
var ErrTargetNotFound = errors.New("target window not found")

// Locate finds the leaf holding id with a depth-first search, left subtree
// before right. It returns the leaf and its parent (nil when the leaf is the root).
func Locate(root *entity.LayoutNode, id entity.WindowID) (node, parent *entity.LayoutNode, ok bool) {
	return locate(root, nil, id)
}

func locate(node, parent *entity.LayoutNode, id entity.WindowID) (*entity.LayoutNode, *entity.LayoutNode, bool) {
	if node == nil {
		return nil, nil, false
	}
	if node.IsLeaf() && node.WindowID == id {
		return node, parent, true
	}
	for _, child := range node.Children {
		if found, p, ok := locate(child, node, id); ok {
			return found, p, true
		}
	}
	return nil, nil, false
}

// Contains reports whether a leaf for id exists in the tree.
func Contains(root *entity.LayoutNode, id entity.WindowID) bool {
	_, _, ok := Locate(root, id)
	return ok
}

// SplitAt replaces the leaf holding target with a split whose left child keeps
// target and whose right child holds newID. The returned root must replace the
// caller's root: splitting a root leaf yields a new root.
//
// An empty tree becomes a single leaf for newID.
func SplitAt(root *entity.LayoutNode, target, newID entity.WindowID) (*entity.LayoutNode, error) {
	if root == nil {
		return entity.NewLeafNode(newID), nil
	}

	leaf, parent, ok := Locate(root, target)
	if !ok {
		return root, fmt.Errorf("split at %q: %w", target, ErrTargetNotFound)
	}

	return replaceLeaf(root, parent, leaf, newID), nil
}

// AppendAtEnd splits the right-most leaf, reached by always descending into
// the right child, so that newID lands at the end of the tree. It never fails.
func AppendAtEnd(root *entity.LayoutNode, newID entity.WindowID) *entity.LayoutNode {
	if root == nil {
		return entity.NewLeafNode(newID)
	}

	var parent *entity.LayoutNode
	cur := root
	for cur.IsSplit() {
		parent = cur
		cur = cur.Right()
	}

	return replaceLeaf(root, parent, cur, newID)
}

// replaceLeaf swaps leaf for a split (leaf, newID) in parent, or makes the
// split the new root when leaf has no parent.
func replaceLeaf(root, parent, leaf *entity.LayoutNode, newID entity.WindowID) *entity.LayoutNode {
	split := entity.NewSplitNode(entity.NewLeafNode(leaf.WindowID), entity.NewLeafNode(newID))

	if parent == nil {
		return split
	}

	for i, child := range parent.Children {
		if child == leaf {
			parent.Children[i] = split
			break
		}
	}
	return root
}

// RebuildFromWindows discards any previous shape and builds a tree from ids
// in order. Each window after the first splits lastFocused when it is already
// in the tree, and is appended at the end otherwise. Returns nil for no ids.
//
// The result depends only on (ids, lastFocused).
func RebuildFromWindows(ids []entity.WindowID, lastFocused entity.WindowID) *entity.LayoutNode {
	if len(ids) == 0 {
		return nil
	}

	root := entity.NewLeafNode(ids[0])
	for _, id := range ids[1:] {
		root = Insert(root, lastFocused, id)
	}
	return root
}

// Insert adds id next to the focused leaf when focused is in the tree,
// and at the end of the tree otherwise.
func Insert(root *entity.LayoutNode, focused, id entity.WindowID) *entity.LayoutNode {
	if focused != "" && Contains(root, focused) {
		next, err := SplitAt(root, focused, id)
		if err == nil {
			return next
		}
		// Unreachable while presence is checked above; kept for callers that skip the check.
	}
	return AppendAtEnd(root, id)
}
